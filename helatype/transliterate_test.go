package helatype

import (
	"sync"
	"testing"
)

func TestSampleTable(t *testing.T) {
	engine := New(sampleTable())

	cases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"123 !@#", "123 !@#"},
		{"tha", "ථ"},
		{"k", "ක්"},
		{"ka", "ක"},
		{"ki", "කි"},
		{"tra", "ට්‍ර"},
		{"kya", "ක්‍ය"},
		{"q", "q"},
		{"a", "අ"},
		{"kA", "ක්A"},
		{"ka ki", "ක කි"},
	}

	for _, c := range cases {
		assertEqual(t, engine.Transliterate(c.input), c.expected)
	}
}

func TestLongestConsonantWins(t *testing.T) {
	engine := New(sampleTable())

	// "th" must not be split into ට and a stray h
	assertEqual(t, engine.Transliterate("thi"), "ථි")
	assertEqual(t, engine.Transliterate("th"), "ථ්")
}

func TestClusters(t *testing.T) {
	engine := New(sampleTable())

	cases := []struct {
		input    string
		expected string
	}{
		// followed by a consonant
		{"krk", "ක්‍ර්ක්"},
		{"kyk", "ක්‍ය්ක්"},
		{"trt", "ට්‍ර්ට්"},
		// end of input
		{"kr", "ක්‍ර්"},
		{"ky", "ක්‍ය්"},
		{"tr", "ට්‍ර්"},
		// followed by a vowel
		{"kra", "ක්‍ර"},
		{"kya", "ක්‍ය"},
		{"tri", "ට්‍රි"},
		{"kyi", "ක්‍යි"},
		// r or y after a cluster is not joined again
		{"kry", "ක්‍ර්y"},
		// anything else after the base
		{"kq", "ක්q"},
	}

	for _, c := range cases {
		assertEqual(t, engine.Transliterate(c.input), c.expected)
	}
}

func TestPassthrough(t *testing.T) {
	inputs := []string{
		"123 !@#",
		"ශ්‍රී ලංකා",
		"\xff\xfe",
		"\t\n",
		"🙂",
	}

	for _, input := range inputs {
		assertEqual(t, Transliterate(input), input)
	}
}

func TestSinhala(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"amma", "අම්ම"},
		{"ammaa", "අම්මා"},
		{"mama", "මම"},
		{"kohomadha", "කොහොමද"},
		{"sathya", "සත්‍ය"},
		{"priya", "ප්‍රිය"},
		{"pry", "ප්‍ර්ය්"},
		{"kram", "ක්‍රම්"},
		{"karma", "කර්ම"},
		{"sandha", "සඳ"},
		{"amba", "අඹ"},
		{"lankaava", "ලන්කාව"},
		{"oya", "ඔය"},
		{"kRu", "කෘ"},
		{"mama hello 123", "මම හෙල්ලො 123"},
		{"Ka", "ඛ"},
		{"Qa", "Qඅ"},
		{"xa", "xඅ"},
	}

	for _, c := range cases {
		assertEqual(t, Transliterate(c.input), c.expected)
	}
}

func TestIdempotentOnOutput(t *testing.T) {
	for _, input := range []string{"kohomadha", "sathya", "mama hello"} {
		once := Transliterate(input)
		assertEqual(t, Transliterate(once), once)
	}
}

func TestDefaultIsBuiltOnce(t *testing.T) {
	assertEqual(t, Default() == Default(), true)
	assertEqual(t, len(Default().Table().Entries()), len(SinhalaEntries()))
}

func TestConcurrentTransliterate(t *testing.T) {
	engine := New(NewTable(SinhalaEntries(), SinhalaVowelSigns()))
	expected := engine.Transliterate("kohomadha sathya priya")

	var wg sync.WaitGroup
	results := make([]string, 16)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = engine.Transliterate("kohomadha sathya priya")
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assertEqual(t, result, expected)
	}
}
