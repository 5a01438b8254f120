package mediakey

import "testing"

func TestIsVideoKey(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"videos/dev-ops-bootcamp_202201/lesson01.mp4", true},
		{"videos/dev-ops-bootcamp_202201/week1/lesson01.MOV", true},
		{"videos/course_x/a.mkv", true},
		{"videos/course_x/a.webm", true},
		{"videos/course_x/a.flv", true},
		{"videos/course_x/a.wmv", true},
		{"videos/course_x/a.avi", true},
		{"videos/course_x/a.mp3", false},
		{"videos/course_x/a.vtt", false},
		{"uploads/course_x/a.mp4", false},
		{"Videos/course_x/a.mp4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsVideoKey(tt.key); got != tt.expected {
				t.Errorf("IsVideoKey(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestTranscribeScope(t *testing.T) {
	tests := []struct {
		key         string
		inScope     bool
		transcribes bool
	}{
		{"videos/dev-ops-bootcamp_202201/lesson01.mp4", true, true},
		{"videos/dev-ops-bootcamp_202201/audio/lesson01.MP3", true, true},
		{"videos/dev-ops-bootcamp_202201/lesson01.wav", true, true},
		{"videos/dev-ops-bootcamp_202201/lesson01.webm", true, false},
		{"videos/kubernetes_202301/lesson01.mp4", false, true},
		{"videos/dev-ops-bootcamp_202202/lesson01.mp4", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := InTranscribeScope(tt.key); got != tt.inScope {
				t.Errorf("InTranscribeScope(%q) = %v, want %v", tt.key, got, tt.inScope)
			}
			if got := IsTranscribable(tt.key); got != tt.transcribes {
				t.Errorf("IsTranscribable(%q) = %v, want %v", tt.key, got, tt.transcribes)
			}
		})
	}
}

func TestIsSubtitleKey(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"videos/course/lesson01__1700000000.vtt", true},
		{"videos/course/lesson01__1700000000.srt", true},
		{"videos/course/lesson01__1700000000.VTT", false},
		{"videos/course/lesson01__1700000000.json", false},
		{"videos/course/lesson01.mp4", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsSubtitleKey(tt.key); got != tt.expected {
				t.Errorf("IsSubtitleKey(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name     string
		wantBase string
		wantExt  string
	}{
		{"lesson01.mp4", "lesson01", ".mp4"},
		{"lesson.01.final.mov", "lesson.01.final", ".mov"},
		{"lesson01", "lesson01", ""},
		{".mp4", ".mp4", ""},
		{"..mp4", "..mp4", ""},
		{"a.", "a", "."},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, ext := SplitExt(tt.name)
			if base != tt.wantBase || ext != tt.wantExt {
				t.Errorf("SplitExt(%q) = (%q, %q), want (%q, %q)", tt.name, base, ext, tt.wantBase, tt.wantExt)
			}
		})
	}
}

func TestDirAndBase(t *testing.T) {
	if got := Dir("videos/course/lesson01.mp4"); got != "videos/course" {
		t.Errorf("Dir = %q", got)
	}
	if got := Dir("lesson01.mp4"); got != "" {
		t.Errorf("Dir of top-level key = %q, want empty", got)
	}
	if got := Base("videos/course/lesson01.mp4"); got != "lesson01.mp4" {
		t.Errorf("Base = %q", got)
	}
	if got := Base("lesson01.mp4"); got != "lesson01.mp4" {
		t.Errorf("Base of top-level key = %q", got)
	}
}
