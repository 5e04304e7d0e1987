package problemgen

import "math/rand/v2"

// Operand ranges. Addition and subtraction stay within two digits;
// subtraction is constructed so the result is never negative.
// Division is built backward from an exact quotient.
const (
	twoDigitMin = 10
	twoDigitMax = 99

	mulLeftMin   = 12
	mulLeftMax   = 99
	smallFactMin = 2
	smallFactMax = 9

	quotientMin = 10
	quotientMax = 19
)

// randInt returns a uniform random int in [min, max].
func randInt(min, max int) int {
	return min + rand.IntN(max-min+1)
}

// Generate produces one random problem of the given kind.
func Generate(kind Kind) Problem {
	switch kind {
	case KindSubtraction:
		b := randInt(twoDigitMin, twoDigitMax)
		a := randInt(b, twoDigitMax)
		return Problem{Kind: kind, A: a, B: b, Answer: a - b}
	case KindMultiplication:
		a := randInt(mulLeftMin, mulLeftMax)
		b := randInt(smallFactMin, smallFactMax)
		return Problem{Kind: kind, A: a, B: b, Answer: a * b}
	case KindDivision:
		b := randInt(smallFactMin, smallFactMax)
		q := randInt(quotientMin, quotientMax)
		return Problem{Kind: kind, A: q * b, B: b, Answer: q}
	default:
		a := randInt(twoDigitMin, twoDigitMax)
		b := randInt(twoDigitMin, twoDigitMax)
		return Problem{Kind: KindAddition, A: a, B: b, Answer: a + b}
	}
}

// GenerateSet produces the configured number of problems per kind and
// returns them in uniformly shuffled order (Fisher-Yates).
func GenerateSet(cfg Counts) []Problem {
	problems := make([]Problem, 0, cfg.Total())
	for i := 0; i < cfg.Addition; i++ {
		problems = append(problems, Generate(KindAddition))
	}
	for i := 0; i < cfg.Subtraction; i++ {
		problems = append(problems, Generate(KindSubtraction))
	}
	for i := 0; i < cfg.Multiplication; i++ {
		problems = append(problems, Generate(KindMultiplication))
	}
	for i := 0; i < cfg.Division; i++ {
		problems = append(problems, Generate(KindDivision))
	}
	rand.Shuffle(len(problems), func(i, j int) {
		problems[i], problems[j] = problems[j], problems[i]
	})
	return problems
}
