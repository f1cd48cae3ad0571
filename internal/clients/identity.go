package clients

import (
	"context"
	"fmt"

	"github.com/mertkaradayi/gradecore/internal/app/models"
)

// IdentityClient reads accounts from the identity service.
type IdentityClient struct {
	client *baseClient
}

// GetAccountsByUniversity loads all accounts of a university. The caller
// intersects them with a group's declared roster.
func (c *IdentityClient) GetAccountsByUniversity(ctx context.Context, universityID string) ([]*models.Account, error) {
	var payload struct {
		Accounts []*models.Account `json:"accounts"`
	}
	path := fmt.Sprintf("/accounts/by-university/%s", universityID)
	if err := c.client.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload.Accounts, nil
}
