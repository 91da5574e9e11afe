package api

import (
	"context"
	"net/http"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
)

// GetMe retrieves the authenticated user's details and token balances.
func GetMe(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.UserInfo, error) {
	const op = "get user info"
	var resp types.MeResponse
	if err := do(ctx, httpClient, op, http.MethodGet, endpoint(baseURL, "me"), nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.UserDetails) == 0 {
		return nil, &errors.Error{Kind: errors.KindAPI, Op: op, StatusCode: http.StatusOK, Message: "response carried no user_details"}
	}
	d := resp.UserDetails[0]
	info := &types.UserInfo{
		UserID:                  d.User.ID,
		Username:                d.User.Username,
		TokenRenewalDate:        d.TokenRenewalDate,
		PaidTokens:              d.PaidTokens,
		SubscriptionTokens:      d.SubscriptionTokens,
		SubscriptionGPTTokens:   d.SubscriptionGptTokens,
		SubscriptionModelTokens: d.SubscriptionModelTokens,
		APIConcurrencySlots:     d.APIConcurrencySlots,
	}
	if d.APIPaidTokens != nil {
		info.APIPaidTokens = *d.APIPaidTokens
	}
	if d.APISubscriptionTokens != nil {
		info.APISubscriptionTokens = *d.APISubscriptionTokens
	}
	return info, nil
}
