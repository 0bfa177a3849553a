package api

import (
	"context"

	"google.golang.org/grpc"
)

// CardBoardClient calls cardboard.v1.CardBoard over cc using the JSON codec.
type CardBoardClient struct {
	cc grpc.ClientConnInterface
}

func NewCardBoardClient(cc grpc.ClientConnInterface) *CardBoardClient {
	return &CardBoardClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CardBoardClient) Register(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *CardBoardClient) Login(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *CardBoardClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *CardBoardClient) Ping(ctx context.Context, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, &Empty{}, opts)
}

func (c *CardBoardClient) LookupUserID(ctx context.Context, in *LookupUserIDRequest, opts ...grpc.CallOption) (*LookupUserIDResponse, error) {
	return invoke[LookupUserIDResponse](ctx, c.cc, MethodLookupUserID, in, opts)
}

func (c *CardBoardClient) LookupUserEmail(ctx context.Context, in *LookupUserEmailRequest, opts ...grpc.CallOption) (*LookupUserEmailResponse, error) {
	return invoke[LookupUserEmailResponse](ctx, c.cc, MethodLookupUserEmail, in, opts)
}

func (c *CardBoardClient) CreateCard(ctx context.Context, in *CreateCardRequest, opts ...grpc.CallOption) (*CardResponse, error) {
	return invoke[CardResponse](ctx, c.cc, MethodCreateCard, in, opts)
}

func (c *CardBoardClient) UpdateCard(ctx context.Context, in *UpdateCardRequest, opts ...grpc.CallOption) (*CardResponse, error) {
	return invoke[CardResponse](ctx, c.cc, MethodUpdateCard, in, opts)
}

func (c *CardBoardClient) GetCard(ctx context.Context, in *CardRequest, opts ...grpc.CallOption) (*CardResponse, error) {
	return invoke[CardResponse](ctx, c.cc, MethodGetCard, in, opts)
}

func (c *CardBoardClient) ListCards(ctx context.Context, opts ...grpc.CallOption) (*ListCardsResponse, error) {
	return invoke[ListCardsResponse](ctx, c.cc, MethodListCards, &Empty{}, opts)
}

func (c *CardBoardClient) SetCardImage(ctx context.Context, in *SetCardImageRequest, opts ...grpc.CallOption) (*CardResponse, error) {
	return invoke[CardResponse](ctx, c.cc, MethodSetCardImage, in, opts)
}

func (c *CardBoardClient) RemoveCardImage(ctx context.Context, in *RemoveCardImageRequest, opts ...grpc.CallOption) (*CardResponse, error) {
	return invoke[CardResponse](ctx, c.cc, MethodRemoveCardImage, in, opts)
}

func (c *CardBoardClient) ShareCard(ctx context.Context, in *ShareCardRequest, opts ...grpc.CallOption) (*ShareCardResponse, error) {
	return invoke[ShareCardResponse](ctx, c.cc, MethodShareCard, in, opts)
}

func (c *CardBoardClient) RemoveAccess(ctx context.Context, in *CardRequest, opts ...grpc.CallOption) (*RemoveAccessResponse, error) {
	return invoke[RemoveAccessResponse](ctx, c.cc, MethodRemoveAccess, in, opts)
}

func (c *CardBoardClient) RevokeShare(ctx context.Context, in *RevokeShareRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodRevokeShare, in, opts)
}

func (c *CardBoardClient) ListShares(ctx context.Context, in *CardRequest, opts ...grpc.CallOption) (*ListSharesResponse, error) {
	return invoke[ListSharesResponse](ctx, c.cc, MethodListShares, in, opts)
}

func (c *CardBoardClient) ListNotifications(ctx context.Context, opts ...grpc.CallOption) (*ListNotificationsResponse, error) {
	return invoke[ListNotificationsResponse](ctx, c.cc, MethodListNotifications, &Empty{}, opts)
}

func (c *CardBoardClient) MarkNotificationRead(ctx context.Context, in *NotificationRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodMarkNotificationRead, in, opts)
}

func (c *CardBoardClient) MarkAllNotificationsRead(ctx context.Context, opts ...grpc.CallOption) (*MarkAllNotificationsReadResponse, error) {
	return invoke[MarkAllNotificationsReadResponse](ctx, c.cc, MethodMarkAllNotificationsRead, &Empty{}, opts)
}

func (c *CardBoardClient) DeleteNotification(ctx context.Context, in *NotificationRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDeleteNotification, in, opts)
}

func (c *CardBoardClient) UnreadCount(ctx context.Context, opts ...grpc.CallOption) (*UnreadCountResponse, error) {
	return invoke[UnreadCountResponse](ctx, c.cc, MethodUnreadCount, &Empty{}, opts)
}

func (c *CardBoardClient) GetProfile(ctx context.Context, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, MethodGetProfile, &Empty{}, opts)
}

func (c *CardBoardClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, MethodUpdateProfile, in, opts)
}

func (c *CardBoardClient) UploadAvatar(ctx context.Context, in *UploadAvatarRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, MethodUploadAvatar, in, opts)
}
