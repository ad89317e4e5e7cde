package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRule_FuncName(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{Rule{Enum: "MainError", TypeName: "NetworkError"}, "MainErrorFromNetworkError"},
		{Rule{Enum: "MainError", PkgName: "strconv", TypeName: "NumError"}, "MainErrorFromStrconvNumError"},
		{Rule{Enum: "MainError", PkgName: "strconv", TypeName: "NumError", SourcePointer: true}, "MainErrorFromStrconvNumError"},
		{Rule{Enum: "MainError", PkgName: "neturl", TypeName: "Error"}, "MainErrorFromNeturlError"},
		{Rule{Enum: "E", TypeName: "int"}, "EFromInt"},
		{Rule{Enum: "E", PkgName: "url", TypeName: "URL"}, "EFromUrlURL"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.FuncName())
		})
	}
}
