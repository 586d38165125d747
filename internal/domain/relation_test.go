package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationFromEndpoints_AllPairs(t *testing.T) {
	cases := []struct {
		from, to EndpointKind
		want     RelationKind
	}{
		{EndpointEnd, EndpointStart, FinishToStart},
		{EndpointStart, EndpointStart, StartToStart},
		{EndpointEnd, EndpointEnd, FinishToFinish},
		{EndpointStart, EndpointEnd, StartToFinish},
	}
	for _, tc := range cases {
		got, err := RelationFromEndpoints(tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s+%s", tc.from, tc.to)

		from, to := got.Endpoints()
		assert.Equal(t, tc.from, from)
		assert.Equal(t, tc.to, to)
	}
}

func TestRelationFromEndpoints_RejectsUnknown(t *testing.T) {
	_, err := RelationFromEndpoints("X", EndpointStart)
	require.ErrorIs(t, err, ErrInvalidEndpoint)

	_, err = RelationFromEndpoints(EndpointEnd, "")
	require.ErrorIs(t, err, ErrInvalidEndpoint)
}

func TestParseRelationKind(t *testing.T) {
	for _, k := range RelationKinds {
		got, err := ParseRelationKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseRelationKind("fs")
	require.ErrorIs(t, err, ErrInvalidRelation)
	_, err = ParseRelationKind("SE")
	require.ErrorIs(t, err, ErrInvalidRelation)
}

func TestRelationKind_Label(t *testing.T) {
	assert.Equal(t, "Finish→Start", FinishToStart.Label())
	assert.Equal(t, "Start→Finish", StartToFinish.Label())
}

func TestDependency_Validate(t *testing.T) {
	ok := Dependency{PredecessorID: "a", SuccessorID: "b", Kind: FinishToStart}
	assert.NoError(t, ok.Validate())

	for _, k := range RelationKinds {
		self := Dependency{PredecessorID: "a", SuccessorID: "a", Kind: k}
		assert.ErrorIs(t, self.Validate(), ErrSelfDependency, "kind=%s", k)
	}

	bad := Dependency{PredecessorID: "a", SuccessorID: "b", Kind: "XX"}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidRelation)

	missing := Dependency{PredecessorID: "", SuccessorID: "b", Kind: FinishToStart}
	assert.Error(t, missing.Validate())
}
