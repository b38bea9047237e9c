package anvil

import (
	"context"
	"encoding/json"
	"fmt"
)

const currentUserQuery = `
query CurrentUser {
  currentUser {
    eid
    name
    email
    organizations {
      eid
      name
      slug
      casts {
        eid
        name
      }
    }
  }
}
`

const getCastQuery = `
query GetCast ($eid: String!) {
  cast (eid: $eid) {
    eid
    name
    title
    fieldInfo
  }
}
`

// Cast is a reusable PDF template and its field definitions.
type Cast struct {
	Eid   string `json:"eid"`
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`

	// FieldInfo is the raw field-definition JSON; its shape is owned by the
	// remote service and varies per template.
	FieldInfo json.RawMessage `json:"fieldInfo,omitempty"`
}

// Organization is one organization the current user belongs to.
type Organization struct {
	Eid   string `json:"eid"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Casts []Cast `json:"casts"`
}

// User is the account the API key belongs to.
type User struct {
	Eid           string         `json:"eid"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Organizations []Organization `json:"organizations"`
}

// CurrentUser returns the account behind the configured API key.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	const op = "currentUser"

	data, err := c.query(ctx, op, currentUserQuery, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		CurrentUser *User `json:"currentUser"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if out.CurrentUser == nil {
		return nil, fmt.Errorf("%s: empty response", op)
	}
	return out.CurrentUser, nil
}

// GetCast fetches one template by its eid, including field definitions.
func (c *Client) GetCast(ctx context.Context, eid string) (*Cast, error) {
	const op = "getCast"

	data, err := c.query(ctx, op, getCastQuery, map[string]any{"eid": eid})
	if err != nil {
		return nil, err
	}

	var out struct {
		Cast *Cast `json:"cast"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if out.Cast == nil {
		return nil, fmt.Errorf("%s: empty response", op)
	}
	return out.Cast, nil
}

// ListCasts returns the templates of every organization the current user
// belongs to, in the order the service reports them.
func (c *Client) ListCasts(ctx context.Context) ([]Cast, error) {
	user, err := c.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	var casts []Cast
	for _, org := range user.Organizations {
		casts = append(casts, org.Casts...)
	}
	return casts, nil
}
