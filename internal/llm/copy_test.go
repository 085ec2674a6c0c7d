package llm

import "testing"

func TestParseCopy(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCopy     string
		wantHashtags string
	}{
		{
			name:         "both markers",
			text:         "COPY: Start your morning with us.\nHASHTAGS: #yoga #sunrise",
			wantCopy:     "Start your morning with us.",
			wantHashtags: "#yoga #sunrise",
		},
		{
			name:         "preamble before copy is dropped",
			text:         "Sure! Here you go.\n\nCOPY:\nFresh classes this week.\n\nHASHTAGS:\n#fitness",
			wantCopy:     "Fresh classes this week.",
			wantHashtags: "#fitness",
		},
		{
			name:         "no hashtags marker",
			text:         "COPY: Just the copy, no tags.",
			wantCopy:     "Just the copy, no tags.",
			wantHashtags: "",
		},
		{
			name:         "no markers at all",
			text:         "  Plain response text  ",
			wantCopy:     "Plain response text",
			wantHashtags: "",
		},
		{
			name:         "hashtags without copy marker",
			text:         "Body text HASHTAGS: #a",
			wantCopy:     "Body text",
			wantHashtags: "#a",
		},
		{
			name:         "empty",
			text:         "",
			wantCopy:     "",
			wantHashtags: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCopy, gotHashtags := ParseCopy(tt.text)
			if gotCopy != tt.wantCopy {
				t.Errorf("ParseCopy() copy = %q, want %q", gotCopy, tt.wantCopy)
			}
			if gotHashtags != tt.wantHashtags {
				t.Errorf("ParseCopy() hashtags = %q, want %q", gotHashtags, tt.wantHashtags)
			}
		})
	}
}
