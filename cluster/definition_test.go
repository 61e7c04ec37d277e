package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/errors"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]cluster.Algorithm{
		"kt":        cluster.Kt,
		"CA":        cluster.CambridgeAachen,
		"cambridge": cluster.CambridgeAachen,
		"anti-kt":   cluster.AntiKt,
		"AntiKt":    cluster.AntiKt,
		"genkt":     cluster.GenKt,
		"ee_kt":     cluster.EEKt,
		"ee_genkt":  cluster.EEGenKt,
	}
	for in, want := range cases {
		got, err := cluster.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := cluster.ParseAlgorithm("siscone")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestParseRecombiner(t *testing.T) {
	r, err := cluster.ParseRecombiner("WTA_pt_scheme")
	require.NoError(t, err)
	assert.Equal(t, cluster.WTAPtScheme, r)
	r, err = cluster.ParseRecombiner("")
	require.NoError(t, err)
	assert.Equal(t, cluster.EScheme, r)
	_, err = cluster.ParseRecombiner("pt2")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDefinition_Validate(t *testing.T) {
	assert.NoError(t, cluster.Definition{Algorithm: cluster.AntiKt, R: 0.4}.Validate())
	assert.NoError(t, cluster.Definition{Algorithm: cluster.EEKt}.Validate())

	bad := []cluster.Definition{
		{Algorithm: cluster.Kt, R: 0},
		{Algorithm: cluster.Kt, R: 2000},
		{Algorithm: cluster.Algorithm(42), R: 1},
		{Algorithm: cluster.Kt, R: 1, Recombiner: cluster.Recombiner(7)},
	}
	for _, d := range bad {
		assert.True(t, errors.IsInvalidArgument(d.Validate()), d.String())
	}
}

func TestDefinition_ExclusiveSafe(t *testing.T) {
	assert.True(t, cluster.Definition{Algorithm: cluster.Kt}.ExclusiveSafe())
	assert.True(t, cluster.Definition{Algorithm: cluster.CambridgeAachen}.ExclusiveSafe())
	assert.True(t, cluster.Definition{Algorithm: cluster.EEKt}.ExclusiveSafe())
	assert.True(t, cluster.Definition{Algorithm: cluster.GenKt, P: 0.5}.ExclusiveSafe())
	assert.False(t, cluster.Definition{Algorithm: cluster.GenKt, P: -1}.ExclusiveSafe())
	assert.False(t, cluster.Definition{Algorithm: cluster.AntiKt}.ExclusiveSafe())
}

func TestDefinition_String(t *testing.T) {
	assert.Equal(t, "antikt R=0.4 E_scheme", cluster.Definition{Algorithm: cluster.AntiKt, R: 0.4}.String())
	assert.Equal(t, "genkt R=1 p=0.5 WTA_pt_scheme",
		cluster.Definition{Algorithm: cluster.GenKt, R: 1, P: 0.5, Recombiner: cluster.WTAPtScheme}.String())
	assert.Equal(t, "ee_kt E_scheme", cluster.Definition{Algorithm: cluster.EEKt}.String())
}
