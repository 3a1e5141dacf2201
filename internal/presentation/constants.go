package presentation

const (
	AuthKey       = "Authorization"
	TypeKey       = "Content-Type"
	VideoIDParam  = "videoID"
	AssetKeyParam = "assetKey"
)
