package skipset

import "fmt"

func ExampleSkipSet_Insert() {
	s := New[int]()
	s.Insert(2)
	s.Insert(1)
	s.Insert(2)
	fmt.Println(s.Len())
	// Output: 2
}

func ExampleSkipSet_Contains() {
	s := New[string]()
	s.Insert("b")
	s.Insert("a")
	fmt.Println(s.Contains("a"), s.Contains("c"))
	// Output: true false
}

func ExampleSkipSet_Get() {
	s := New[int]()
	s.Insert(3)
	s.Insert(1)
	s.Insert(2)
	for n := s.Get(1); n != nil; n = n.Next(0) {
		v, _ := n.Value()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 1 2 3
}

func ExampleSkipSet_Delete() {
	s := New[int]()
	s.Insert(1)
	s.Insert(2)
	fmt.Println(s.Delete(1), s.Delete(1))
	fmt.Println(s.Len())
	// Output: true false
	// 1
}

func ExampleNewWithHeight() {
	s := NewWithHeight[int](8)
	s.Insert(1)
	fmt.Println(s.Height())
	// Output: 8
}
