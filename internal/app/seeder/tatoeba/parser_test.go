package tatoeba

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile is a test helper that creates a file with given content.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"1\tGood morning.\t77\tBuenos días.",
		"2\tI like tea.\t78\tMe gusta el té.",
		"3\tgood   MORNING.\t79\tBuen día.", // same source after normalization
		"4\tonly three\tfields",
		"5\t \t80\tVacío.",
		"6\tThe cat sleeps.\t81\tEl gato duerme.",
	}, "\n")

	got, err := Parse(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []SentencePair{
		{Source: "Good morning.", Target: "Buenos días."},
		{Source: "I like tea.", Target: "Me gusta el té."},
		{Source: "The cat sleeps.", Target: "El gato duerme."},
	}
	if len(got.Pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d: %+v", len(got.Pairs), len(want), got.Pairs)
	}
	for i := range want {
		if got.Pairs[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, got.Pairs[i], want[i])
		}
	}

	wantStats := Stats{TotalLines: 6, SkippedMalformed: 2, SkippedDuplicate: 1, TotalPairs: 3}
	if got.Stats != wantStats {
		t.Errorf("stats = %+v, want %+v", got.Stats, wantStats)
	}
}

func TestParse_MaxSentenceLen(t *testing.T) {
	input := "1\tShort.\t2\tCorto.\n" +
		"3\tThis one is far too long.\t4\tDemasiado largo.\n" +
		"5\tOk.\t6\tEsta traducción es demasiado larga.\n" +
		"7\t今日は\t8\tHoy\n"

	got, err := Parse(strings.NewReader(input), Options{MaxSentenceLen: 10})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got.Stats.SkippedLong != 2 {
		t.Errorf("SkippedLong = %d, want 2", got.Stats.SkippedLong)
	}
	if got.Stats.TotalPairs != 2 {
		t.Fatalf("TotalPairs = %d, want 2", got.Stats.TotalPairs)
	}
	// Length is measured in runes, not bytes.
	if got.Pairs[1].Source != "今日は" {
		t.Errorf("second pair = %+v", got.Pairs[1])
	}
}

func TestParse_Limit(t *testing.T) {
	input := "1\tA.\t2\tUno.\n3\tB.\t4\tDos.\n5\tC.\t6\tTres.\n"

	got, err := Parse(strings.NewReader(input), Options{Limit: 2})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Stats.TotalPairs != 2 || got.Stats.TotalLines != 2 {
		t.Errorf("stats = %+v, want 2 pairs from 2 lines", got.Stats)
	}
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse(strings.NewReader(""), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.Pairs) != 0 || got.Stats.TotalLines != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.tsv")
	if err := writeFile(path, "1\tHello.\t2\tHola.\n"); err != nil {
		t.Fatal(err)
	}

	got, err := ParseFile(path, Options{})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got.Stats.TotalPairs != 1 {
		t.Errorf("TotalPairs = %d, want 1", got.Stats.TotalPairs)
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.tsv"), Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToExercises(t *testing.T) {
	r := ParseResult{Pairs: []SentencePair{{Source: "Hello.", Target: "Hola."}}}

	got := r.ToExercises()
	if len(got) != 1 {
		t.Fatalf("got %d exercises, want 1", len(got))
	}
	if got[0].SourceSentence != "Hello." || got[0].TargetSentence != "Hola." {
		t.Errorf("exercise = %+v", got[0])
	}
}

func TestParse_CollapsesTargetWhitespace(t *testing.T) {
	input := "1\tHello!\t2\tBonjour\u00a0!\n" +
		"3\tI am hungry.\t4\tTôi  đói.\n"

	got, err := Parse(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []SentencePair{
		{Source: "Hello!", Target: "Bonjour !"},
		{Source: "I am hungry.", Target: "Tôi đói."},
	}
	if len(got.Pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(got.Pairs), len(want))
	}
	for i := range want {
		if got.Pairs[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, got.Pairs[i], want[i])
		}
	}
}
