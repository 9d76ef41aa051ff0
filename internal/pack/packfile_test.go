package pack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/mcpack/internal/pack"
)

func TestParsePack(t *testing.T) {
	records, err := pack.ParsePack([]byte(`{
		"formatVersion": 1,
		"components": [
			{"uid": "net.minecraft", "currentVersion": "1.7.10"},
			{"uid": "org.lwjgl", "cachedName": "LWJGL 2"},
			{"uid": "org.multimc.jarmod.abc"}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, []pack.Record{
		{UID: "net.minecraft", CurrentVersion: "1.7.10"},
		{UID: "org.lwjgl", CachedName: "LWJGL 2"},
		{UID: "org.multimc.jarmod.abc"},
	}, records)
}

func TestParsePack_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"wrong format version", `{"formatVersion": 2, "components": []}`},
		{"missing format version", `{"components": []}`},
		{"missing components", `{"formatVersion": 1}`},
		{"components not an array", `{"formatVersion": 1, "components": {}}`},
		{"entry not an object", `{"formatVersion": 1, "components": [1]}`},
		{"entry without uid", `{"formatVersion": 1, "components": [{"currentVersion": "1.0"}]}`},
		{"uid not a string", `{"formatVersion": 1, "components": [{"uid": 5}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pack.ParsePack([]byte(tt.data))
			assert.ErrorIs(t, err, pack.ErrInvalidPackFile)
		})
	}
}

func TestMarshalPack(t *testing.T) {
	data, err := pack.MarshalPack([]pack.Record{
		{UID: "net.minecraft", CurrentVersion: "1.7.10", CachedName: "Minecraft"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"formatVersion": 1,
		"components": [{"uid": "net.minecraft", "currentVersion": "1.7.10", "cachedName": "Minecraft"}]
	}`, string(data))

	empty, err := pack.MarshalPack(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"formatVersion": 1, "components": []}`, string(empty))
}
