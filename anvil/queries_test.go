package anvil

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUser(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gqlOK(t, w, map[string]any{"currentUser": map[string]any{
			"eid":   "usr123",
			"name":  "Cameron",
			"email": "cameron@example.com",
			"organizations": []any{map[string]any{
				"eid": "org1", "name": "Example Org", "slug": "example",
				"casts": []any{map[string]any{"eid": "cast1", "name": "NDA"}},
			}},
		}})
	}))

	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cameron", user.Name)
	require.Len(t, user.Organizations, 1)
	require.Len(t, user.Organizations[0].Casts, 1)
	assert.Equal(t, "NDA", user.Organizations[0].Casts[0].Name)
}

func TestGetCast(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gqlOK(t, w, map[string]any{"cast": map[string]any{
			"eid":       "cast1",
			"name":      "NDA",
			"title":     "Mutual NDA",
			"fieldInfo": []any{map[string]any{"id": "signOne", "type": "signature"}},
		}})
	}))

	cast, err := c.GetCast(context.Background(), "cast1")
	require.NoError(t, err)
	assert.Equal(t, "Mutual NDA", cast.Title)
	assert.JSONEq(t, `[{"id":"signOne","type":"signature"}]`, string(cast.FieldInfo))
}

func TestListCasts_FlattensOrganizations(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gqlOK(t, w, map[string]any{"currentUser": map[string]any{
			"eid": "usr123",
			"organizations": []any{
				map[string]any{"eid": "org1", "casts": []any{
					map[string]any{"eid": "cast1", "name": "NDA"},
					map[string]any{"eid": "cast2", "name": "Lease"},
				}},
				map[string]any{"eid": "org2", "casts": []any{
					map[string]any{"eid": "cast3", "name": "W-9"},
				}},
			},
		}})
	}))

	casts, err := c.ListCasts(context.Background())
	require.NoError(t, err)
	require.Len(t, casts, 3)
	assert.Equal(t, "cast1", casts[0].Eid)
	assert.Equal(t, "cast3", casts[2].Eid)
}
