package cli

func (a *App) commands() []command {
	return []command{
		{name: "register", usage: "register", help: "create an account", run: a.Register},
		{name: "login", usage: "login", help: "sign in", run: a.Login},
		{name: "ping", usage: "ping", help: "check the server", run: a.Ping},

		{name: "cards", alias: "ls", usage: "cards", help: "list your board", auth: true, run: a.ListCards},
		{name: "show", usage: "show <card-id>", help: "show one card", nargs: 1, auth: true, run: a.ShowCard},
		{name: "create", usage: "create", help: "create a card", auth: true, run: a.CreateCard},
		{name: "edit", usage: "edit <card-id>", help: "edit name, colour, link or icon", nargs: 1, auth: true, run: a.EditCard},
		{name: "image", usage: "image <card-id> <file>", help: "upload a card image", nargs: 2, auth: true, run: a.SetCardImage},
		{name: "icon", usage: "icon <card-id> <icon-name>", help: "replace the image with an icon", nargs: 2, auth: true, run: a.SetCardIcon},
		{name: "remove", alias: "rm", usage: "remove <card-id>", help: "delete your card or leave a shared one", nargs: 1, auth: true, run: a.RemoveCard},

		{name: "share", usage: "share <card-id> <email>", help: "share a card", nargs: 2, auth: true, run: a.ShareCard},
		{name: "shares", usage: "shares <card-id>", help: "list who a card is shared with", nargs: 1, auth: true, run: a.ListShares},
		{name: "revoke", usage: "revoke <card-id> <email|user-id>", help: "stop sharing with someone", nargs: 2, auth: true, run: a.RevokeShare},

		{name: "notifications", alias: "n", usage: "notifications", help: "show your notifications", auth: true, run: a.ListNotifications},
		{name: "read", usage: "read <notification-id|all>", help: "mark as read", nargs: 1, auth: true, run: a.MarkRead},
		{name: "dismiss", usage: "dismiss <notification-id>", help: "delete a notification", nargs: 1, auth: true, run: a.DismissNotification},

		{name: "profile", usage: "profile", help: "show your profile", auth: true, run: a.ShowProfile},
		{name: "editprofile", usage: "editprofile", help: "edit name and phone", auth: true, run: a.EditProfile},
		{name: "avatar", usage: "avatar <file>", help: "upload an avatar", nargs: 1, auth: true, run: a.UploadAvatar},
		{name: "whois", usage: "whois <email|user-id>", help: "look up a user", nargs: 1, auth: true, run: a.Whois},

		{name: "logout", usage: "logout", help: "sign out and clear local data", auth: true, run: a.Logout},
	}
}
