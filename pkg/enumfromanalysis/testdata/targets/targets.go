package targets

//enumfrom:enum
type MainError interface{ isMainError() }

//enumfrom:from("") // want `expected this to take a type name`
type Empty struct{ string }

//enumfrom:from("a.b.c") // want `"a.b.c" is not a type name`
type Invalid struct{ string }

//enumfrom:from("json.SyntaxError") // want `no import named json in the file declaring Unknown`
type Unknown struct{ string }

//enumfrom:from "int" // want `expected //enumfrom:from\("TypeName", \.\.\.\)`
type Malformed struct{ string }

//enumfrom:from(int, "uint") // want `ignoring int: targets must be string literals`
type Ignored struct{ string }

//enumfrom:frm("int8") // want `unknown directive //enumfrom:frm`
type Typo struct{ string }

//enumfrom:from("int16")
type First struct{ string }

//enumfrom:from("int16") // want `int16 is already converted into MainError by variant First`
type Second struct{ string }

func (Empty) isMainError()     {}
func (Invalid) isMainError()   {}
func (Unknown) isMainError()   {}
func (Malformed) isMainError() {}
func (Ignored) isMainError()   {}
func (Typo) isMainError()      {}
func (First) isMainError()     {}
func (Second) isMainError()    {}
