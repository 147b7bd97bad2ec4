package multisine

import "testing"

func BenchmarkSynthesizeTrialsOrthogonal(b *testing.B) {
	s, err := New(DefaultConfig(), WithRNG(testRNG(1)))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := s.SynthesizeTrials(2, 3, 2, ModeOrthogonal)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSynthesizeTrialsRandom(b *testing.B) {
	s, err := New(DefaultConfig(), WithRNG(testRNG(1)))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := s.SynthesizeTrials(2, 3, 2, ModeRandom)
		if err != nil {
			b.Fatal(err)
		}
	}
}
