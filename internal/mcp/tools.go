package mcp

import (
	"context"
	"fmt"
	"math"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"drift/internal/mood"
)

const (
	dayToday     = "today"
	dayYesterday = "yesterday"
)

type GetMoodInput struct {
	Day string `json:"day,omitempty" jsonschema:"today or yesterday, defaults to today"`
}

type RecordMoodInput struct {
	X float64 `json:"x" jsonschema:"energy from 0 (low, left) to 1 (high, right); clamped"`
	Y float64 `json:"y" jsonschema:"weight from 0 (light, top) to 1 (heavy, bottom); clamped"`
}

type ClassifyMoodInput struct {
	X float64 `json:"x" jsonschema:"energy from 0 to 1"`
	Y float64 `json:"y" jsonschema:"weight from 0 to 1"`
}

type MoodOutput struct {
	Key       string  `json:"key"`
	DateLabel string  `json:"date_label"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Label     string  `json:"label"`
	Recorded  bool    `json:"recorded"`
}

type ClassifyMoodOutput struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_mood",
		Description: "Return today's or yesterday's recorded mood",
	}, s.handleGetMood)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "record_mood",
		Description: "Record today's mood as a position on the energy/weight square",
	}, s.handleRecordMood)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "classify_mood",
		Description: "Name the mood for a position without recording it",
	}, s.handleClassifyMood)
}

func (s *Server) handleGetMood(ctx context.Context, req *sdk.CallToolRequest, input GetMoodInput) (*sdk.CallToolResult, MoodOutput, error) {
	var date time.Time
	switch input.Day {
	case "", dayToday:
		date = s.clock.Now()
	case dayYesterday:
		date = mood.OffsetDate(s.clock, -1)
	default:
		return nil, MoodOutput{}, fmt.Errorf("day must be %q or %q", dayToday, dayYesterday)
	}

	key := mood.KeyForDate(s.prefix, date)
	coords, ok := s.store.Load(ctx, key)
	if !ok {
		coords = mood.Center
	}
	return nil, s.moodOutput(key, date, coords.Clamp(), ok), nil
}

func (s *Server) handleRecordMood(ctx context.Context, req *sdk.CallToolRequest, input RecordMoodInput) (*sdk.CallToolResult, MoodOutput, error) {
	if math.IsNaN(input.X) || math.IsNaN(input.Y) {
		return nil, MoodOutput{}, fmt.Errorf("x and y must be numbers")
	}
	now := s.clock.Now()
	key := mood.KeyForDate(s.prefix, now)
	coords := mood.Coords{X: input.X, Y: input.Y}.Clamp()
	s.store.Save(ctx, key, coords)
	return nil, s.moodOutput(key, now, coords, true), nil
}

func (s *Server) handleClassifyMood(ctx context.Context, req *sdk.CallToolRequest, input ClassifyMoodInput) (*sdk.CallToolResult, ClassifyMoodOutput, error) {
	coords := mood.Coords{X: input.X, Y: input.Y}.Clamp()
	return nil, ClassifyMoodOutput{X: coords.X, Y: coords.Y, Label: coords.Label().String()}, nil
}

func (s *Server) moodOutput(key string, date time.Time, coords mood.Coords, recorded bool) MoodOutput {
	return MoodOutput{
		Key:       key,
		DateLabel: mood.FormatDateLabel(date, s.clock.Now()),
		X:         coords.X,
		Y:         coords.Y,
		Label:     coords.Label().String(),
		Recorded:  recorded,
	}
}
