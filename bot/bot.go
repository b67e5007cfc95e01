/* bot.go
 * Contains logic used for creating and running the bot. Requires a discord bot token, and APIPtr both of which are
 * passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"bracket-engine/api/api"
	"bracket-engine/api/bracket"
	"bracket-engine/api/seeding"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
	Model    *bracket.BracketModel
	Seeding  *seeding.Seeding
	limiter  *rate.Limiter
}

// NewBot creates a bot serving reports for one calculated bracket model
// Preconditions: Receives a discord bot token, the API, the model and the seeding the model was calculated with
// Postconditions: Returns pointer to the Bot object, or an error if the token is missing
func NewBot(botToken string, apiPtr *api.API, model *bracket.BracketModel, sg *seeding.Seeding) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		Model:    model,
		Seeding:  sg,
		// Discord caps bots well below this, one burst of 5 then one reply a second keeps us clear
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}, nil
}

func (b *Bot) Run() error {
	// create a session
	discord, err := discordgo.New("Bot " + b.BotToken)
	if err != nil {
		return err
	}

	// add an event handler
	discord.AddHandler(b.newMessage)

	// open session
	discord.Open()
	defer discord.Close() // close session, after function termination

	// keep bot running until there is NO os interruption (ctrl + C)
	fmt.Println("Bot running....")
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
	return nil
}

func (b *Bot) newMessage(discord *discordgo.Session, message *discordgo.MessageCreate) {
	//To prevent bot from responding to its own message, if the message author id matches the bot's then just return
	if message.Author.ID == discord.State.User.ID {
		return
	}
	b.dispatch(discord, message)
}

// dispatch routes a message to the matching command handler, dropping it when the
// reply rate limit has been hit
func (b *Bot) dispatch(session DiscordSession, message *discordgo.MessageCreate) {
	if !strings.HasPrefix(message.Content, "$") {
		return
	}
	if !b.limiter.Allow() {
		return
	}

	// respond to user message if it contains one of the following commands
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$teams"):
		b.teamsHandler(session, message)

	case startsWith(message.Content, "$standings"):
		b.standingsHandler(session, message)

	case startsWith(message.Content, "$bracket"):
		b.bracketHandler(session, message)

	case startsWith(message.Content, "$h2h"):
		b.headToHeadHandler(session, message)
	}
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
