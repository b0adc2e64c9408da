package history

import (
	"fmt"

	"github.com/suryakamal494/timetable-workspace-api/internal/grid"
	"github.com/suryakamal494/timetable-workspace-api/internal/models"
)

// Command is one undoable unit of grid mutation. Commands carry their own
// inverse and are never mutated after creation.
type Command interface {
	Apply(g *grid.Grid) error
	Revert(g *grid.Grid) error
	Description() string
}

// AddCommand inserts an entry; its inverse removes it.
type AddCommand struct {
	Entry models.TimetableEntry
}

func (c AddCommand) Apply(g *grid.Grid) error {
	return g.Add(c.Entry)
}

func (c AddCommand) Revert(g *grid.Grid) error {
	_, err := g.Remove(c.Entry.ID)
	return err
}

func (c AddCommand) Description() string {
	return fmt.Sprintf("Assign %s to %s (%s period %d)", c.Entry.TeacherName, c.Entry.BatchName, c.Entry.Day, c.Entry.Period)
}

// RemoveCommand deletes an entry; the full entry is captured so the inverse
// can re-insert it.
type RemoveCommand struct {
	Entry models.TimetableEntry
}

func (c RemoveCommand) Apply(g *grid.Grid) error {
	_, err := g.Remove(c.Entry.ID)
	return err
}

func (c RemoveCommand) Revert(g *grid.Grid) error {
	return g.Add(c.Entry)
}

func (c RemoveCommand) Description() string {
	return fmt.Sprintf("Remove %s from %s period %d", c.Entry.SubjectName, c.Entry.Day, c.Entry.Period)
}

// MoveCommand rewrites an entry's slot; the inverse moves it back.
type MoveCommand struct {
	EntryID string
	From    models.Slot
	To      models.Slot
}

func (c MoveCommand) Apply(g *grid.Grid) error {
	_, err := g.Move(c.EntryID, c.To.Day, c.To.Period)
	return err
}

func (c MoveCommand) Revert(g *grid.Grid) error {
	_, err := g.Move(c.EntryID, c.From.Day, c.From.Period)
	return err
}

func (c MoveCommand) Description() string {
	return fmt.Sprintf("Move period from %s %d to %s %d", c.From.Day, c.From.Period, c.To.Day, c.To.Period)
}

// History turns grid mutations into a linear undo/redo stack. Applying a new
// command clears the redo stack. Depth is unbounded unless a positive limit
// is set, in which case the oldest applied commands are discarded first.
type History struct {
	grid   *grid.Grid
	past   []Command
	future []Command
	limit  int
}

// New constructs a history bound to a grid. limit <= 0 means unbounded.
func New(g *grid.Grid, limit int) *History {
	return &History{grid: g, limit: limit}
}

// Apply executes the command's forward effect and records it.
func (h *History) Apply(cmd Command) error {
	if err := cmd.Apply(h.grid); err != nil {
		return err
	}
	h.past = append(h.past, cmd)
	if h.limit > 0 && len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.future = nil
	return nil
}

// Undo reverts the most recent command. Returns false, leaving the grid
// untouched, when there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.past) == 0 {
		return false
	}
	cmd := h.past[len(h.past)-1]
	if err := cmd.Revert(h.grid); err != nil {
		return false
	}
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, cmd)
	return true
}

// Redo re-executes the most recently undone command. Returns false when the
// redo stack is empty.
func (h *History) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	cmd := h.future[len(h.future)-1]
	if err := cmd.Apply(h.grid); err != nil {
		return false
	}
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, cmd)
	return true
}

// CanUndo reports whether an undo would take effect.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// Depth returns the number of commands an undo sequence could revert.
func (h *History) Depth() int {
	return len(h.past)
}

// CanRedo reports whether a redo would take effect.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// UndoDescription describes the command an undo would revert.
func (h *History) UndoDescription() string {
	if len(h.past) == 0 {
		return ""
	}
	return h.past[len(h.past)-1].Description()
}

// RedoDescription describes the command a redo would re-apply.
func (h *History) RedoDescription() string {
	if len(h.future) == 0 {
		return ""
	}
	return h.future[len(h.future)-1].Description()
}

// Reset drops both stacks. Used after restoring a session snapshot, which is
// not an undoable action.
func (h *History) Reset() {
	h.past = nil
	h.future = nil
}
