package game

// scriptedSource replays fixed die faces so rolls are predictable.
type scriptedSource struct {
	faces []int
	next  int
}

func (s *scriptedSource) Intn(n int) int {
	face := s.faces[s.next%len(s.faces)]
	s.next++
	return (face - 1) % n
}

func scriptedResolver(faces ...int) *Resolver {
	return NewResolver(NewStandardRules(), NewRollerFromSource(&scriptedSource{faces: faces}))
}
