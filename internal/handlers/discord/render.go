package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorSuccess = 0x2ecc71
	colorError   = 0xe74c3c
	colorInfo    = 0x5865f2
)

// replyEmbed sends an embed to the channel, logging delivery failures
func replyEmbed(s *discordgo.Session, channelID, title, description string, color int) {
	_, err := s.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	})
	if err != nil {
		log.Printf("Error sending embed to channel %s: %v", channelID, err)
	}
}

func replySuccess(s *discordgo.Session, channelID, description string) {
	replyEmbed(s, channelID, "Success", description, colorSuccess)
}

func replyError(s *discordgo.Session, channelID, description string) {
	replyEmbed(s, channelID, "Failed", description, colorError)
}

func replyInfo(s *discordgo.Session, channelID, title, description string) {
	replyEmbed(s, channelID, title, description, colorInfo)
}
