// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// minimalPDF builds a valid n-page PDF with empty pages and a correct xref
// table, small enough to rasterize instantly.
func minimalPDF(n int) []byte {
	var b bytes.Buffer
	var offsets []int
	b.WriteString("%PDF-1.4\n")

	writeObj := func(body string) {
		offsets = append(offsets, b.Len())
		b.WriteString(body)
	}

	kids := make([]string, n)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), n))
	for i := 0; i < n; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 72 72] >>\nendobj\n", 3+i))
	}

	xrefOff := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(offsets)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefOff)
	return b.Bytes()
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderWalksPagesInOrder(t *testing.T) {
	r := New()

	var calls [][2]int
	err := r.Render(minimalPDF(3), func(page, total int, png []byte) error {
		calls = append(calls, [2]int{page, total})
		if !bytes.HasPrefix(png, pngMagic) {
			t.Errorf("page %d: output is not PNG", page)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := [][2]int{{1, 3}, {2, 3}, {3, 3}}
	if len(calls) != len(want) {
		t.Fatalf("fn called %d times, want %d", len(calls), len(want))
	}
	for i, c := range calls {
		if c != want[i] {
			t.Errorf("call %d = %v, want %v", i, c, want[i])
		}
	}
}

func TestRenderRestartable(t *testing.T) {
	r := New()
	data := minimalPDF(2)

	for run := 0; run < 2; run++ {
		pages := 0
		if err := r.Render(data, func(page, total int, png []byte) error {
			pages++
			return nil
		}); err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		if pages != 2 {
			t.Errorf("run %d rendered %d pages, want 2", run, pages)
		}
	}
}

func TestRenderInvalidPDF(t *testing.T) {
	r := New()
	err := r.Render([]byte("definitely not a pdf"), func(page, total int, png []byte) error {
		t.Fatal("fn must not be called for an invalid document")
		return nil
	})

	var oe *OpenError
	if !errors.As(err, &oe) {
		t.Fatalf("error = %v, want *OpenError", err)
	}
}

func TestRenderCallbackErrorAborts(t *testing.T) {
	r := New()
	boom := errors.New("boom")

	calls := 0
	err := r.Render(minimalPDF(3), func(page, total int, png []byte) error {
		calls++
		if page == 2 {
			return boom
		}
		return nil
	})

	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom propagated unchanged", err)
	}
	if calls != 2 {
		t.Errorf("fn called %d times, want 2 (abort after page 2)", calls)
	}
}

func TestPageErrorMessageNamesPage(t *testing.T) {
	e := &PageError{Page: 4, Err: errors.New("bad stream")}
	if !strings.Contains(e.Error(), "page 4") {
		t.Errorf("Error() = %q, should name the failing page", e.Error())
	}
}
