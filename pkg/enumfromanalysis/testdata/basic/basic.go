package basic

import (
	"fmt"
	"strconv"
)

type NetworkError struct{ Code int }

func (e NetworkError) Error() string { return fmt.Sprintf("network %d", e.Code) }

type DatabaseError struct{ Table string }

//enumfrom:enum
type MainError interface{ isMainError() }

//enumfrom:from("NetworkError", "TimeoutError")
type Network struct{ string }

//enumfrom:from("DatabaseError")
type Database struct{ DatabaseError }

//enumfrom:from("strconv.NumError")
type Parse struct{ strconv.NumError }

type Unknown struct{}

func (Network) isMainError()   {}
func (Database) isMainError()  {}
func (*Parse) isMainError()    {}
func (Unknown) isMainError()   {}
