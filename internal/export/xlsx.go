// Package export renders a completed or partial fact-find as an Excel
// workbook: the answers sheet, a per-category completion summary, and
// the conversation transcript.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bunnyflex/factfind-chatbot/internal/mapping"
	"github.com/bunnyflex/factfind-chatbot/internal/questionnaire"
	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

const (
	sheetFactFind   = "Fact Find"
	sheetSummary    = "Summary"
	sheetTranscript = "Transcript"
)

// Workbook builds the export for one session. The caller owns the file
// and must Close it.
func Workbook(state *types.ConversationState, q *questionnaire.Questionnaire, table []mapping.FieldMapping) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeFactFind(f, state, q, table); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSummary(f, state, q, table); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTranscript(f, state); err != nil {
		f.Close()
		return nil, err
	}

	// The default sheet is replaced by ours.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(sheetFactFind)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)
	return f, nil
}

// Write streams the workbook for one session to w.
func Write(w io.Writer, state *types.ConversationState, q *questionnaire.Questionnaire, table []mapping.FieldMapping) error {
	f, err := Workbook(state, q, table)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeFactFind(f *excelize.File, state *types.ConversationState, q *questionnaire.Questionnaire, table []mapping.FieldMapping) error {
	if _, err := f.NewSheet(sheetFactFind); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := setRow(f, sheetFactFind, 1, "Section", "Question", "Field", "Answer"); err != nil {
		return err
	}
	row := 2
	for _, section := range q.Sections {
		for _, qu := range section.Questions {
			field := questionnaire.FieldName(qu.ID)
			if fm, ok := mapping.ByQuestion(table, qu.ID); ok {
				field = fm.DataField
			}
			// Raw values keep their type: excelize renders booleans as
			// TRUE/FALSE and numbers as numbers.
			var answer any = ""
			if v, ok := state.CollectedData.Lookup(field); ok {
				answer = v
			}
			if err := setRow(f, sheetFactFind, row, section.Title, qu.Text, field, answer); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeSummary(f *excelize.File, state *types.ConversationState, q *questionnaire.Questionnaire, table []mapping.FieldMapping) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := setRow(f, sheetSummary, 1, "Section", "Answered", "Asked", "Completion"); err != nil {
		return err
	}
	row := 2
	for _, section := range q.Sections {
		answered, asked := 0, 0
		for _, qu := range section.Questions {
			if !questionnaire.ShouldShow(qu.ID, state.CollectedData) {
				continue
			}
			asked++
			field := questionnaire.FieldName(qu.ID)
			if fm, ok := mapping.ByQuestion(table, qu.ID); ok {
				field = fm.DataField
			}
			if _, ok := state.CollectedData.Lookup(field); ok {
				answered++
			}
		}
		completion := "0%"
		if asked > 0 {
			completion = fmt.Sprintf("%d%%", answered*100/asked)
		}
		if err := setRow(f, sheetSummary, row, section.Title, answered, asked, completion); err != nil {
			return err
		}
		row++
	}
	if err := setRow(f, sheetSummary, row+1, "Session", state.SessionID, "", ""); err != nil {
		return err
	}
	return setRow(f, sheetSummary, row+2, "Overall progress", fmt.Sprintf("%d%%", state.Progress), "", "")
}

func writeTranscript(f *excelize.File, state *types.ConversationState) error {
	if _, err := f.NewSheet(sheetTranscript); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := setRow(f, sheetTranscript, 1, "Time", "Role", "Message"); err != nil {
		return err
	}
	for i, m := range state.Messages {
		if err := setRow(f, sheetTranscript, i+2, m.Timestamp.Format(time.RFC3339), m.Role, m.Content); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
