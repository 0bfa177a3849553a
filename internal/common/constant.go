package common

// AccessTokenHeaderName is the gRPC/HTTP metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// NotificationKindCardShared is the only notification kind emitted today.
const NotificationKindCardShared = "card_shared"
