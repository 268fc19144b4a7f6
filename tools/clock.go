package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type ClockInput struct {
	Timezone string `json:"timezone,omitempty" jsonschema_description:"IANA timezone name, e.g. \"Asia/Seoul\". Defaults to UTC."`
}

var ClockInputSchema = GenerateSchema[ClockInput]()

var ClockDefinition = ToolDefinition{
	Name:        "clock",
	Description: "Get the current date and time, optionally in a specific timezone.",
	InputSchema: ClockInputSchema,
	Function:    Clock,
}

// now is swapped in tests.
var now = time.Now

func Clock(_ context.Context, input json.RawMessage) (string, error) {
	var in ClockInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	loc := time.UTC
	if tz := strings.TrimSpace(in.Timezone); tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return "", fmt.Errorf("unknown timezone %q", tz)
		}
	}

	t := now().In(loc)
	return fmt.Sprintf("%s (%s)", t.Format("Monday, 2 January 2006, 15:04:05 MST"), loc.String()), nil
}
