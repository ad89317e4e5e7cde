package kinds

//enumfrom:enum
type StructEnum struct{} // want `StructEnum must be an interface to derive conversions, found a struct`

//enumfrom:enum
type GenericEnum[T any] interface{ isGeneric(T) } // want `GenericEnum has type parameters; generic enums are not supported`

//enumfrom:enum
type EmptyEnum interface{} // want `EmptyEnum must declare at least one method to seal its variants`

//enumfrom:enum("x") // want `expected //enumfrom:enum without arguments`
type ArgEnum interface{ isArgEnum() }

//enumfrom:from("string")
type Arg struct{ string }

func (Arg) isArgEnum() {}

//enumfrom:enum
type MainError interface{ isMainError() }

//enumfrom:from("int")
type Network struct{ string }

//enumfrom:from("int64")
type Code int // want `variant Code of MainError must be declared as a struct type`

func (Network) isMainError() {}
func (Code) isMainError()    {}

//enumfrom:from("uint") // want `Stray carries //enumfrom:from but implements no enum in this package`
type Stray struct{ string }

//enumfrom:from("uint8") // want `Boxed carries //enumfrom:from but generic types cannot be enum variants`
type Boxed[T any] struct{ v T }

func (Boxed[T]) isMainError() {}
