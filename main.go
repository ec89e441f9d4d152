package main

import (
	"time"

	"github.com/alexeykadochnik0v/nextlevel-backend/cmd"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/util"
)

func main() {
	data := map[string]interface{}{
		"startTime":   time.Now().Format("January 02, 2006 - 03:04:05 PM MST"),
		"message":     "Starting nextlevel backend server . . .",
		"codeVersion": "1.0.0",
		"repo":        "nextlevel-backend",
	}
	util.PrettyPrint(data)
	cmd.New().Execute()
}
