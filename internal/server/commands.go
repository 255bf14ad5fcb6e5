package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"bitlife/internal/session"
	"bitlife/pkg/core"
	"bitlife/pkg/life"
)

// Command is a control message sent by a client as a JSON text frame.
type Command struct {
	Type   string      `json:"type"`
	Row    uint32      `json:"row,omitempty"`
	Column uint32      `json:"column,omitempty"`
	Cells  [][2]uint32 `json:"cells,omitempty"`
	Name   string      `json:"name,omitempty"`
	Width  uint32      `json:"width,omitempty"`
	Height uint32      `json:"height,omitempty"`
	Seed   *int64      `json:"seed,omitempty"`
}

// Reply is sent back to the originating client when a command fails.
type Reply struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrUnknownCommand is returned for a command type the server does not handle.
var ErrUnknownCommand = errors.New("server: unknown command")

// ParseCommand decodes a JSON command.
func ParseCommand(data []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Command{}, fmt.Errorf("invalid command: %w", err)
	}
	return cmd, nil
}

// Apply runs cmd against s. newSeed supplies a seed when a randomize
// command does not carry one.
func (cmd Command) Apply(s *session.Session, newSeed func() int64) error {
	switch cmd.Type {
	case "toggle":
		return s.Toggle(cmd.Row, cmd.Column)
	case "set":
		locs := make([]life.Location, len(cmd.Cells))
		for i, c := range cmd.Cells {
			locs[i] = life.Location{Row: c[0], Column: c[1]}
		}
		return s.Seed(locs...)
	case "pattern":
		return s.Place(cmd.Name, cmd.Row, cmd.Column)
	case "step":
		s.Step()
	case "pause":
		s.SetPaused(true)
	case "resume":
		s.SetPaused(false)
	case "clear":
		s.Clear()
	case "randomize":
		seed := newSeed()
		if cmd.Seed != nil {
			seed = *cmd.Seed
		}
		s.Randomize(core.NewRNG(seed))
	case "resize":
		return s.Resize(cmd.Width, cmd.Height)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}
	return nil
}

func errorReply(err error) []byte {
	payload, _ := json.Marshal(Reply{Type: "error", Message: err.Error()})
	return payload
}
