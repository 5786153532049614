package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "ChatGPT",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "A much longer tool name that should still hash consistently every time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("Midjourney")
	id2 := IDFromContent("ChatGPT")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestToolRecord_Document(t *testing.T) {
	tests := []struct {
		name   string
		record ToolRecord
		want   string
	}{
		{
			name: "name and summary",
			record: ToolRecord{
				Name:    "ChatGPT",
				Summary: "Conversational assistant.",
			},
			want: "ChatGPT. Conversational assistant.",
		},
		{
			name: "empty summary",
			record: ToolRecord{
				Name: "Midjourney",
			},
			want: "Midjourney. ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.record.Document()
			if got != tt.want {
				t.Errorf("ToolRecord.Document() = %q, want %q", got, tt.want)
			}
		})
	}
}
