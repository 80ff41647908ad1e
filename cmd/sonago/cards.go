package main

import (
	"github.com/spf13/cobra"
)

func newAddCardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add-card FRONT BACK",
		Short: "Add a card to the current AnkiWeb deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := c.credentials()
			msg, err := c.app.Actions.AddCardToCurrentDeck(cmd.Context(), creds.Email, creds.Password, args[0], args[1])
			if err != nil {
				return err
			}
			return c.printJSON(msg)
		},
	}
}

func newHasCardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "has-card SEARCH",
		Short: "Check whether a card matching SEARCH is in the current deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := c.credentials()
			msg, err := c.app.Actions.IsCardInCurrentDeck(cmd.Context(), creds.Email, creds.Password, args[0])
			if err != nil {
				return err
			}
			return c.printJSON(msg)
		},
	}
}

func newFindCardsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "find-cards SEARCH",
		Short: "List cards of the current deck matching SEARCH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := c.credentials()
			cards, err := c.app.Actions.FindCardsInCurrentDeck(cmd.Context(), creds.Email, creds.Password, args[0])
			if err != nil {
				return err
			}
			return c.printJSON(cards)
		},
	}
}

func newAddWordCmd(c *cli) *cobra.Command {
	var english bool
	cmd := &cobra.Command{
		Use:   "add-word WORD",
		Short: "Look WORD up and add a card rendered from the card template",
		Long: `Look WORD up and add a card rendered from the card template.

The template is a tengo script, set with --template or SONAGO_TEMPLATE.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := c.credentials()
			card, err := c.app.Actions.AddWordCard(cmd.Context(), creds.Email, creds.Password, args[0], english)
			if err != nil {
				return err
			}
			return c.printJSON(card)
		},
	}
	cmd.Flags().BoolVarP(&english, "english", "e", false, "word is English")
	cmd.Flags().String("template", "", "path to a tengo card template")
	_ = c.v.BindPFlag("template", cmd.Flags().Lookup("template"))
	return cmd
}
