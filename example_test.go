package enbeet_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/devmattrick/enbeet"
	"github.com/devmattrick/enbeet/types"
)

func Example() {
	c := types.NewNamedCompound("Level")

	err := c.Set(types.NewIntValue(42), "Player", "Score")
	if err != nil {
		log.Fatal(err)
	}

	items, err := types.NewList(types.KindString,
		types.NewStringValue("sword"),
		types.NewStringValue("apple"),
	)
	if err != nil {
		log.Fatal(err)
	}
	c.Add("Items", items)

	var buf bytes.Buffer
	err = enbeet.Write(&buf, c)
	if err != nil {
		log.Fatal(err)
	}

	got, err := enbeet.Read(&buf)
	if err != nil {
		log.Fatal(err)
	}

	name, _ := got.Name()
	score, _ := got.GetInt("Player", "Score")
	fmt.Println(name, score)
	fmt.Println(got)

	// Output:
	// Level 42
	// {"Player":{"Score":42},"Items":["sword","apple"]}
}
