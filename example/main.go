package main

import (
	"fmt"
	"log"
	"strings"

	symtable "github.com/andy-yh-lau/My-COS217-A3"
)

// decl is the kind of caller-owned value a compiler front end might bind
// to an identifier.
type decl struct {
	kind string
	line int
}

func main() {
	st := symtable.New()

	source := []struct {
		name string
		kind string
		line int
	}{
		{"main", "func", 1},
		{"count", "var", 3},
		{"limit", "const", 4},
		{"report", "func", 9},
	}

	for _, s := range source {
		if !st.Put(s.name, &decl{kind: s.kind, line: s.line}) {
			log.Fatalf("duplicate declaration of %q", s.name)
		}
	}

	fmt.Printf("declared %d identifiers\n", st.Len())

	// Look up a binding; the value comes back as the same *decl stored.
	if v, ok := st.Get("count"); ok {
		d := v.(*decl)
		fmt.Printf("count => %s declared on line %d\n", d.kind, d.line)
	}

	// Redeclaring is rejected and leaves the table unchanged.
	if st.Put("main", &decl{kind: "var", line: 12}) {
		log.Fatal("redeclaration of main should have been rejected")
	}

	// Replace swaps the value in place and hands back the old one.
	old, ok := st.Replace("limit", &decl{kind: "const", line: 14})
	if !ok {
		log.Fatal("limit should be bound")
	}
	fmt.Printf("limit moved from line %d\n", old.(*decl).line)

	// Collect every binding with Map, threading a builder through extra.
	var sb strings.Builder
	st.Map(func(key string, value any, extra any) {
		b := extra.(*strings.Builder)
		fmt.Fprintf(b, "%s(%s) ", key, value.(*decl).kind)
	}, &sb)
	fmt.Println("bindings:", sb.String())

	if v, ok := st.Remove("report"); ok {
		fmt.Printf("removed report, was a %s\n", v.(*decl).kind)
	}
	fmt.Printf("%d identifiers remain\n", st.Len())

	fmt.Println("Example completed successfully")
}
