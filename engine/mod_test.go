package engine

import "riskbattle/game"

type scriptedSource struct {
	faces []int
	next  int
}

func (s *scriptedSource) Intn(n int) int {
	face := s.faces[s.next%len(s.faces)]
	s.next++
	return (face - 1) % n
}

func scriptedResolver(faces ...int) *game.Resolver {
	return game.NewResolver(game.NewStandardRules(), game.NewRollerFromSource(&scriptedSource{faces: faces}))
}
