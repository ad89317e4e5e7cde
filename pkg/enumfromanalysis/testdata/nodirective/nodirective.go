package nodirective

//enumfrom:enum
type MainError interface{ isMainError() } // want `attribute not found: no variant of MainError`

type Network struct{ string }

func (Network) isMainError() {}
