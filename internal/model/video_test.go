package model

import "testing"

func TestDetectVideoType(t *testing.T) {
	tests := []struct {
		url      string
		expected VideoType
	}{
		{"https://www.youtube.com/watch?v=abc123", TypeVideo},
		{"https://youtu.be/abc123", TypeVideo},
		{"https://www.youtube.com/shorts/abc123", TypeShort},
		{"https://www.youtube.com/watch?v=abc123&list=PL456", TypePlaylist},
		{"https://www.youtube.com/playlist?list=PL456", TypePlaylist},
		{"HTTPS://WWW.YOUTUBE.COM/WATCH?V=ABC", TypeVideo},
		{"https://example.com/video/42", TypeUnknown},
		{"", TypeUnknown},
	}

	for _, test := range tests {
		if got := DetectVideoType(test.url); got != test.expected {
			t.Errorf("DetectVideoType(%q) = %v, expected %v", test.url, got, test.expected)
		}
	}
}

func TestDetectVideoType_ShortsPathWinsOverWatchHost(t *testing.T) {
	// The shorts path marker is checked before the host pattern
	if got := DetectVideoType("https://www.youtube.com/shorts/x?feature=share"); got != TypeShort {
		t.Errorf("expected TypeShort, got %v", got)
	}
}

func TestStreamDescriptor_Tracks(t *testing.T) {
	tests := []struct {
		name      string
		sd        StreamDescriptor
		hasVideo  bool
		hasAudio  bool
	}{
		{"both none", StreamDescriptor{VCodec: "none", ACodec: "none"}, false, false},
		{"both empty", StreamDescriptor{}, false, false},
		{"video only", StreamDescriptor{VCodec: "avc1", ACodec: "none"}, true, false},
		{"audio only", StreamDescriptor{VCodec: "none", ACodec: "opus"}, false, true},
		{"muxed", StreamDescriptor{VCodec: "vp9", ACodec: "opus"}, true, true},
	}

	for _, test := range tests {
		if got := test.sd.HasVideo(); got != test.hasVideo {
			t.Errorf("%s: HasVideo() = %v, expected %v", test.name, got, test.hasVideo)
		}
		if got := test.sd.HasAudio(); got != test.hasAudio {
			t.Errorf("%s: HasAudio() = %v, expected %v", test.name, got, test.hasAudio)
		}
	}
}

func TestStreamDescriptor_Size(t *testing.T) {
	exact := StreamDescriptor{Filesize: 100, FilesizeApprox: 200}
	if got := exact.Size(); got != 100 {
		t.Errorf("Size() = %d, expected the exact size 100", got)
	}
	approx := StreamDescriptor{FilesizeApprox: 200}
	if got := approx.Size(); got != 200 {
		t.Errorf("Size() = %d, expected the estimate 200", got)
	}
}
