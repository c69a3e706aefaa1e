package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// messages lists conversations, opens one by other-user id, or sends into one.
//
//	messages                 list conversations
//	messages open <userId>   start or resume a conversation
//	messages read <convId>   print history (marks it read)
//	messages send <convId> <text...>
func (a *App) messages(ctx context.Context, args []string) {
	if len(args) == 0 {
		list, err := a.api.ListConversations(ctx)
		if err != nil {
			log.Println(err.Error())
			return
		}
		if len(list) == 0 {
			fmt.Println("No conversations yet")
			return
		}
		for _, c := range list {
			name := c.OtherUserName
			if name == "" {
				name = c.OtherUserID
			}
			fmt.Printf("%s  with %s\n", c.ID, name)
		}
		return
	}

	switch args[0] {
	case "open":
		if len(args) < 2 {
			fmt.Println("Usage: messages open <userId>")
			return
		}
		conv, err := a.api.EnsureConversation(ctx, args[1])
		if err != nil {
			log.Println(err.Error())
			return
		}
		fmt.Println("Conversation", conv.ID)

	case "read":
		if len(args) < 2 {
			fmt.Println("Usage: messages read <convId>")
			return
		}
		msgs, err := a.api.ListMessages(ctx, args[1])
		if err != nil {
			log.Println(err.Error())
			return
		}
		me := ""
		if p := a.profile(); p != nil {
			me = p.ID
		}
		for _, m := range msgs {
			who := "them"
			if m.SenderID == me {
				who = "me"
			}
			fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Format("2006-01-02 15:04"), who, m.Content)
		}

	case "send":
		if len(args) < 3 {
			fmt.Println("Usage: messages send <convId> <text>")
			return
		}
		if _, err := a.api.SendMessage(ctx, args[1], strings.Join(args[2:], " ")); err != nil {
			log.Println(err.Error())
			return
		}
		fmt.Println("Sent")

	default:
		fmt.Println("Unknown subcommand:", args[0])
	}
}
