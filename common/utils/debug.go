package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

// DebugOutput receives the JSON lines written by Debug.
var DebugOutput io.Writer = os.Stdout

func Debug(service string, message string) {
	DebugWith(service, message, nil)
}

// DebugWith writes one JSON line, with the hostname added to the context.
func DebugWith(service string, message string, extra Context) {
	context := make(Context, len(extra)+1)

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	for key, value := range extra {
		context[key] = value
	}

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	fmt.Fprintln(DebugOutput, string(data))
}
