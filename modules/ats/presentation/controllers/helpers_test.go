package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortAsc_CaseInsensitive(t *testing.T) {
	cases := map[string]bool{
		"asc":  true,
		"ASC":  true,
		"aSc":  true,
		"desc": false,
		"DESC": false,
		"DeSc": false,
	}
	for raw, want := range cases {
		r := httptest.NewRequest(http.MethodGet, "/?sort_order="+raw, nil)
		require.Equal(t, want, sortAsc(r, !want), "sort_order=%s", raw)
	}
}

func TestSortAsc_FallsBackToDefault(t *testing.T) {
	for _, target := range []string{"/", "/?sort_order=sideways"} {
		r := httptest.NewRequest(http.MethodGet, target, nil)
		require.True(t, sortAsc(r, true))
		require.False(t, sortAsc(r, false))
	}
}
