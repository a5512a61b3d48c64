// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildRequestShape(t *testing.T) {
	req := BuildRequest("qwen2.5vl", ExtractionPrompt, "data:image/png;base64,AAAA")

	if req.Model != "qwen2.5vl" {
		t.Errorf("Model = %q", req.Model)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1 (stateless, no history)", len(req.Messages))
	}

	msg := req.Messages[0]
	if msg.Role != "user" {
		t.Errorf("Role = %q, want user", msg.Role)
	}
	if len(msg.Content) != 2 {
		t.Fatalf("len(Content) = %d, want text part + image part", len(msg.Content))
	}

	text, image := msg.Content[0], msg.Content[1]
	if text.Type != "text" || text.Text != ExtractionPrompt || text.ImageURL != nil {
		t.Errorf("text part = %+v", text)
	}
	if image.Type != "image_url" || image.ImageURL == nil || image.ImageURL.URL != "data:image/png;base64,AAAA" {
		t.Errorf("image part = %+v", image)
	}
}

func TestBuildRequestJSON(t *testing.T) {
	req := BuildRequest("m", "read this", "data:image/png;base64,Zm9v")

	b, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)

	// The wire format the endpoint expects.
	for _, want := range []string{
		`"model":"m"`,
		`"role":"user"`,
		`"type":"text"`,
		`"type":"image_url"`,
		`"image_url":{"url":"data:image/png;base64,Zm9v"}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("marshaled request missing %s:\n%s", want, got)
		}
	}

	// The text part must not leak an empty image_url field and vice versa.
	if strings.Contains(got, `"image_url":null`) {
		t.Errorf("marshaled request contains null image_url:\n%s", got)
	}
}
