package util

import (
	"encoding/json"
	"fmt"
)

// PrettyPrint logs an indented JSON rendering of the last argument.
func PrettyPrint(data ...interface{}) error {
	fmt.Println()
	byteData, err := json.MarshalIndent(data[len(data)-1], "", " ")
	if err != nil {
		return err
	}
	if len(data) == 1 {
		fmt.Print(data[:len(data)-1]...)
	} else {
		fmt.Println(data[:len(data)-1]...)
	}
	fmt.Println(string(byteData))
	fmt.Println()
	return nil
}

// Recover swallows a panic in the calling goroutine.
func Recover() {
	if r := recover(); r != nil {
		fmt.Println("Recovered from panic:", r)
	}
}
