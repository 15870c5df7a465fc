package showcase

import "github.com/HamzaLatif02/portfolio/internal/project"

// Card is one quick-browse tile. Index is the project's position in the
// filtered sequence and is what a click hands to Carousel.JumpTo.
type Card struct {
	Index   int
	Project project.Project
}

// Cards renders the grid for a filtered sequence. It keeps no state.
func Cards(filtered []project.Project) []Card {
	cards := make([]Card, len(filtered))
	for i, p := range filtered {
		cards[i] = Card{Index: i, Project: p}
	}
	return cards
}
