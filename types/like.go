package types

type LikeCountResponse struct {
	Count int64 `json:"count"`
}
