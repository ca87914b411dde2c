package main

import (
	"bytes"
	"strings"
	"testing"

	"setlister/internal/organizer"
	"setlister/internal/workflow"
)

func TestWriteSummaryNoLinks(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, &workflow.Summary{RunID: "run-1"})

	if !strings.Contains(buf.String(), "nothing was copied") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestWriteSummaryEmptyFolder(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, &workflow.Summary{RunID: "run-1", LinkCount: 2, OutputFolderID: "out-1"})

	got := buf.String()
	if !strings.Contains(got, "out-1") || !strings.Contains(got, "no files matched") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestWriteSummaryPlainListingForNonTerminal(t *testing.T) {
	summary := &workflow.Summary{
		RunID:              "run-1",
		LinkCount:          2,
		FoldersWithMatches: 2,
		OutputFolderID:     "out-1",
		Copies: []organizer.Copy{
			{SourceName: "rehearsal_take1.mp3", CopiedName: "a.rehearsal_take1.mp3", LinkOrder: 0},
			{SourceName: "setlist_final.mp3", CopiedName: "b.setlist_final.mp3", LinkOrder: 1},
		},
	}

	var buf bytes.Buffer
	writeSummary(&buf, summary)

	got := buf.String()
	for _, want := range []string{
		"a.rehearsal_take1.mp3 <- rehearsal_take1.mp3",
		"b.setlist_final.mp3 <- setlist_final.mp3",
		"Copied 2 files from 2 folders into folder out-1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderCopyTableIncludesAllCopies(t *testing.T) {
	summary := &workflow.Summary{
		OutputFolderID: "out-1",
		Copies: []organizer.Copy{
			{SourceName: "song.mp3", CopiedName: "a.song.mp3", LinkOrder: 0},
		},
	}

	rendered := renderCopyTable(summary)
	if !strings.Contains(rendered, "a.song.mp3") || !strings.Contains(rendered, "song.mp3") {
		t.Fatalf("table missing copy rows:\n%s", rendered)
	}
}
