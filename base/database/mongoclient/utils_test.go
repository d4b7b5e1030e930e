package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nftex/settlement/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableListing struct {
		Price     *int64 `bson:"price,omitempty"`
		Active    *bool  `bson:"active,omitempty"`
		Seller    string `bson:"seller"`
		Remark    string `bson:"remark"`
		Untouched *int64 `bson:"untouched,omitempty"`
	}

	patchable := &PatchableListing{}
	patchable.Price = ptr.Int64(100)
	patchable.Active = ptr.Bool(false)
	patchable.Remark = "repriced"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"price":  int64(100),
			"active": false,
			// field seller is empty, so ignore
			"remark": "repriced",
		},
		updater,
	)
}
