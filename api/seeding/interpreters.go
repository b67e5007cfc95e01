/* interpreters.go
 * Contains the pairwise seeding interpreters that turn a ranking into matchup pairings
 * Authors: Zachary Bower
 */

package seeding

import (
	"fmt"
	"math/rand"
)

// Interpreter is a pure function mapping an ordering of length n to unordered
// rank pairs. Pairwise interpreters must partition 0..n-1 into disjoint pairs
// and only accept even n
type Interpreter func(n int) ([][2]int, error)

// Standard pairs rank i with rank i+n/2 (1v3, 2v4 style)
// Preconditions: Receives an even, non-negative length n
// Postconditions: Returns n/2 disjoint rank pairs, or an error for odd n
func Standard(n int) ([][2]int, error) {
	if n%2 != 0 {
		return nil, fmt.Errorf("standard interpreter requires an even number of seeds, got %d", n)
	}
	half := n / 2
	pairs := make([][2]int, half)
	for i := 0; i < half; i++ {
		pairs[i] = [2]int{i, i + half}
	}
	return pairs, nil
}

// Reversed pairs the top rank with the bottom rank inward (1v4, 2v3 style)
// Preconditions: Receives an even, non-negative length n
// Postconditions: Returns n/2 disjoint rank pairs, or an error for odd n
func Reversed(n int) ([][2]int, error) {
	if n%2 != 0 {
		return nil, fmt.Errorf("reversed interpreter requires an even number of seeds, got %d", n)
	}
	half := n / 2
	pairs := make([][2]int, half)
	for i := 0; i < half; i++ {
		pairs[i] = [2]int{i, n - 1 - i}
	}
	return pairs, nil
}

// Random pairs ranks uniformly at random. Mainly useful for group draws where
// rank should not matter
// Preconditions: Receives an even, non-negative length n
// Postconditions: Returns n/2 disjoint rank pairs, or an error for odd n
func Random(n int) ([][2]int, error) {
	if n%2 != 0 {
		return nil, fmt.Errorf("random interpreter requires an even number of seeds, got %d", n)
	}
	ranks := rand.Perm(n)
	half := n / 2
	pairs := make([][2]int, half)
	for i := 0; i < half; i++ {
		pairs[i] = [2]int{ranks[2*i], ranks[2*i+1]}
	}
	return pairs, nil
}
