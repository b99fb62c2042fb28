package types_test

import (
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hooksync/pkg/domain/types"
)

func TestAccessTokenMasking(t *testing.T) {
	token := types.AccessToken("glpat-super-secret")

	gt.V(t, token.String()).Equal("***********")
	gt.V(t, fmt.Sprintf("%s", token)).Equal("***********")
	gt.V(t, token.LogValue().String()).Equal("***********")
}

func TestNewRunID(t *testing.T) {
	id1 := types.NewRunID()
	id2 := types.NewRunID()
	gt.V(t, string(id1)).NotEqual("")
	gt.V(t, id1).NotEqual(id2)
}
