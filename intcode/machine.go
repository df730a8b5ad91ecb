package intcode

import "fmt"

const (
	opAdd  = 1
	opMul  = 2
	opHalt = 99
)

// Run executes mem in place until it halts.
// Returns ErrUnknownOpcode or ErrAddress (wrapped with the faulting pointer)
// on failure; mem may be partially modified in that case.
func Run(mem []int) error {
	ip := 0
	for {
		if ip < 0 || ip >= len(mem) {
			return fmt.Errorf("ip=%d: %w", ip, ErrAddress)
		}
		switch op := mem[ip]; op {
		case opHalt:
			return nil
		case opAdd, opMul:
			if ip+3 >= len(mem) {
				return fmt.Errorf("ip=%d: truncated instruction: %w", ip, ErrAddress)
			}
			a, b, out := mem[ip+1], mem[ip+2], mem[ip+3]
			for _, addr := range [...]int{a, b, out} {
				if addr < 0 || addr >= len(mem) {
					return fmt.Errorf("ip=%d: address %d: %w", ip, addr, ErrAddress)
				}
			}
			if op == opAdd {
				mem[out] = mem[a] + mem[b]
			} else {
				mem[out] = mem[a] * mem[b]
			}
			ip += 4
		default:
			return fmt.Errorf("ip=%d: opcode %d: %w", ip, op, ErrUnknownOpcode)
		}
	}
}

// RunWith copies program, stores noun at address 1 and verb at address 2,
// runs it, and returns the value at address 0. The program is not modified.
func RunWith(program []int, noun, verb int) (int, error) {
	if len(program) < 3 {
		return 0, ErrShortProgram
	}
	mem := make([]int, len(program))
	copy(mem, program)
	mem[1], mem[2] = noun, verb
	if err := Run(mem); err != nil {
		return 0, err
	}
	return mem[0], nil
}

// Search tries every noun and verb in [0, limit], noun-major, on a fresh copy
// of program and returns the first pair whose output equals target.
// Pairs that fault are skipped. Returns ErrNoSolution when none match.
// Complexity: O(limit² · len(program)).
func Search(program []int, target, limit int) (noun, verb int, err error) {
	if len(program) < 3 {
		return 0, 0, ErrShortProgram
	}
	for noun = 0; noun <= limit; noun++ {
		for verb = 0; verb <= limit; verb++ {
			out, err := RunWith(program, noun, verb)
			if err != nil {
				continue
			}
			if out == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("target %d: %w", target, ErrNoSolution)
}

// Answer encodes a noun/verb pair as 100*noun + verb.
func Answer(noun, verb int) int {
	return 100*noun + verb
}
