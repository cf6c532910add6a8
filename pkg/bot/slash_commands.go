package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// SlashCommands defines all available slash commands
var SlashCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "set_character",
		Description: "Set the bot's personality.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "character_name",
				Description: "The name of the character personality to set (e.g., 'makise kurisu', 'erza scarlet', 'ed')",
				Required:    true,
			},
		},
	},
	{
		Name:        "toggle_engagement",
		Description: "Toggle active conversation engagement (on/off).",
	},
	{
		Name:        "reset_chat",
		Description: "Resets your conversation history with the bot.",
	},
	{
		Name:        "my_character",
		Description: "Shows your current character personality.",
	},
	{
		Name:        "list_characters",
		Description: "View all available character personalities.",
	},
	{
		Name:        "define_character",
		Description: "Define a new custom character personality.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "character_name",
				Description: "The name for your new character (e.g., 'wise old wizard')",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "description",
				Description: "A detailed description of the character's personality for the AI to mimic.",
				Required:    true,
			},
		},
	},
}

// SlashCommandHandlers maps command names to their handler functions
var SlashCommandHandlers = map[string]func(h *Handler, s *discordgo.Session, i *discordgo.InteractionCreate){
	"set_character":     handleSetCharacter,
	"toggle_engagement": handleToggleEngagement,
	"reset_chat":        handleResetChat,
	"my_character":      handleMyCharacter,
	"list_characters":   handleListCharacters,
	"define_character":  handleDefineCharacter,
}

func handleSetCharacter(h *Handler, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, userName, err := getUserFromInteraction(i)
	if err != nil {
		log.Printf("Error handling set_character: %v", err)
		return
	}
	opts := optionMap(i)
	respond(s, i, h.SetCharacter(userID, userName, opts["character_name"].StringValue()))
}

func handleToggleEngagement(h *Handler, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, userName, err := getUserFromInteraction(i)
	if err != nil {
		log.Printf("Error handling toggle_engagement: %v", err)
		return
	}
	respond(s, i, h.ToggleEngagement(userID, userName))
}

func handleResetChat(h *Handler, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, userName, err := getUserFromInteraction(i)
	if err != nil {
		log.Printf("Error handling reset_chat: %v", err)
		return
	}
	respond(s, i, h.ResetChat(userID, userName))
}

func handleMyCharacter(h *Handler, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, _, err := getUserFromInteraction(i)
	if err != nil {
		log.Printf("Error handling my_character: %v", err)
		return
	}
	respond(s, i, h.MyCharacter(userID))
}

func handleListCharacters(h *Handler, s *discordgo.Session, i *discordgo.InteractionCreate) {
	respond(s, i, h.ListCharacters())
}

func handleDefineCharacter(h *Handler, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	respond(s, i, h.DefineCharacter(opts["character_name"].StringValue(), opts["description"].StringValue()))
}

// InteractionCreate handles all slash command interactions
func (h *Handler) InteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Only handle application commands (slash commands)
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	commandName := i.ApplicationCommandData().Name

	if handler, ok := SlashCommandHandlers[commandName]; ok {
		handler(h, s, i)
	} else {
		log.Printf("Unknown slash command: %s", commandName)
	}
}

// RegisterSlashCommands registers all slash commands with Discord
func RegisterSlashCommands(s *discordgo.Session, guildID string) ([]*discordgo.ApplicationCommand, error) {
	log.Println("Registering slash commands...")

	registeredCommands := make([]*discordgo.ApplicationCommand, len(SlashCommands))

	for i, cmd := range SlashCommands {
		// Register globally (guildID = "") or for a specific guild
		registeredCmd, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			log.Printf("Cannot create '%s' command: %v", cmd.Name, err)
			return nil, err
		}
		registeredCommands[i] = registeredCmd
		log.Printf("Registered command: %s", cmd.Name)
	}

	return registeredCommands, nil
}

// UnregisterSlashCommands removes all registered slash commands
func UnregisterSlashCommands(s *discordgo.Session, guildID string, commands []*discordgo.ApplicationCommand) error {
	log.Println("Unregistering slash commands...")

	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		err := s.ApplicationCommandDelete(s.State.User.ID, guildID, cmd.ID)
		if err != nil {
			log.Printf("Cannot delete '%s' command: %v", cmd.Name, err)
			return err
		}
		log.Printf("Unregistered command: %s", cmd.Name)
	}

	return nil
}
