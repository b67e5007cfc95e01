/* main.go
 * The "main" method for running the engine and bot. For details see `readme.md`
 * Usage: go run main.go -tournament="<name>" -stage="<stage>"
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"bracket-engine/api/api"
	"bracket-engine/api/bracket"
	"bracket-engine/api/seeding"
	"bracket-engine/api/store"
	"bracket-engine/bot"
	"bracket-engine/web"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()

	//Flags
	tournamentPtr := flag.String("tournament", "ShanghaiMajor2024", "Tournament name, e.g. ShanghaiMajor2024")
	stagePtr := flag.String("stage", "playoffs", "Stage of tournament (e.g. playoffs)")
	addrPtr := flag.String("addr", "", "Address for the webhook server, e.g. :8080. Empty disables the server")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	if err != nil {
		log.Fatal("Error loading .env file")
	}

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		fmt.Println("Invalid \"test\" flag. Should be true or false")
		return
	}
	var discordToken string
	if useTestBot {
		discordToken = os.Getenv("DISCORD_BETA_TOKEN")
	} else {
		discordToken = os.Getenv("DISCORD_PROD_TOKEN")
	}

	// A store is only attached when a mongo uri is configured; the engine runs in memory either way
	var engineStore store.Interface
	if uri := os.Getenv("MONGO_PROD_URI"); uri != "" {
		s, err := store.NewStore("brackets", uri, *tournamentPtr, *stagePtr)
		if err != nil {
			log.Fatalf("failed to initialize store: %v", err)
		}
		defer func() {
			if err = s.Client.Disconnect(context.TODO()); err != nil {
				panic(err)
			}
		}()
		engineStore = s
	}

	engine := api.NewAPI(engineStore)

	// Engine testing
	model, sg, err := EngineTesting(engine)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Start the webhook server when an address was configured
	if *addrPtr != "" {
		go func() {
			err := web.Start(web.Config{
				Addr:       *addrPtr,
				Tournament: *tournamentPtr,
				API:        engine,
				Recalculate: func() error {
					return engine.RunModel(model, sg)
				},
			})
			if err != nil {
				log.Println("webhook server stopped:", err)
			}
		}()
	}

	//Init bot and run
	b, err := bot.NewBot(discordToken, engine, model, sg)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := b.Run(); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}

// This provides a sample of how the engine functions work and how they can be incorporated into bot
func EngineTesting(engine *api.API) (*bracket.BracketModel, *seeding.Seeding, error) {
	teams := []struct {
		id      int
		name    string
		aliases []string
	}{
		{1, "Natus Vincere", []string{"NaVi"}},
		{2, "Team Spirit", []string{"Spirit"}},
		{3, "FaZe Clan", []string{"FaZe"}},
		{4, "MOUZ", []string{"Mouz NXT"}},
	}
	for _, t := range teams {
		if err := engine.RegisterTeam(t.id, t.name, t.aliases...); err != nil {
			return nil, nil, err
		}
	}

	// Played series for the stage, registered in played order
	if err := engine.RegisterResult("Natus Vincere", "MOUZ", 2, 0); err != nil {
		return nil, nil, err
	}
	if err := engine.RegisterResult("Team Spirit", "FaZe Clan", 2, 1); err != nil {
		return nil, nil, err
	}
	if err := engine.RegisterResult("Natus Vincere", "Team Spirit", 1, 2); err != nil {
		return nil, nil, err
	}
	if err := engine.RegisterResult("MOUZ", "FaZe Clan", 0, 2); err != nil {
		return nil, nil, err
	}

	fmt.Println("Getting teams list")
	fmt.Println(engine.GetTeams())

	sg, err := engine.NewSeeding("Natus Vincere", "Team Spirit", "FaZe Clan", "MOUZ")
	if err != nil {
		return nil, nil, err
	}

	// Semifinals pair 1v4 and 2v3; the final and third place decider feed off the semifinal results
	model := bracket.NewModel()
	if err := model.Next("semifinals", bracket.NewMatchSet(bracket.BySeeding(sg), seeding.Reversed)); err != nil {
		return nil, nil, err
	}
	if err := model.Next("final", bracket.NewMatchSet(model.WinnersOf("semifinals"), seeding.Standard)); err != nil {
		return nil, nil, err
	}
	if err := model.Next("third_place", bracket.NewMatchSet(model.LosersOf("semifinals"), seeding.Standard)); err != nil {
		return nil, nil, err
	}

	fmt.Println("Calculating bracket")
	if err := engine.RunModel(model, sg); err != nil {
		return model, sg, err
	}

	fmt.Println(engine.GetBracketReport(model))

	standings, err := engine.GetStandings(sg)
	if err != nil {
		return model, sg, err
	}
	fmt.Println(standings)

	return model, sg, nil
}
