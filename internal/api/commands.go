package api

import (
	"encoding/json"
	"fmt"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// Command type strings accepted on the dispatch endpoint. New runs are
// created through POST /api/runs, so start_game is deliberately absent.
const (
	CmdInitGame                  = "init_game"
	CmdToggleGodMode             = "toggle_god_mode"
	CmdActivateCurse             = "activate_curse"
	CmdTakeCardToHand            = "take_card_to_hand"
	CmdInteractWithMonster       = "interact_with_monster"
	CmdUseSpellOnTarget          = "use_spell_on_target"
	CmdSellItem                  = "sell_item"
	CmdResetHand                 = "reset_hand"
	CmdMerchantBuy               = "merchant_buy"
	CmdMerchantLeave             = "merchant_leave"
	CmdAddCoins                  = "add_coins"
	CmdScheduleMerchantNextRound = "schedule_merchant_next_round"
	CmdClearScout                = "clear_scout"
)

type commandEnvelope struct {
	Type string `json:"type"`
}

// ParseCommand decodes a dispatch payload of the form {"type": ..., <fields>}
// into the engine's command union. The type string is returned alongside the
// command so handlers can log it.
func ParseCommand(data []byte) (game.Command, string, error) {
	var env commandEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, "", fmt.Errorf("failed to parse command payload: %w", err)
	}

	cmd, err := decodeCommand(env.Type, data)
	if err != nil {
		return nil, env.Type, err
	}
	return cmd, env.Type, nil
}

func decodeCommand(kind string, data []byte) (game.Command, error) {
	switch kind {
	case CmdInitGame:
		return game.InitGame{}, nil
	case CmdToggleGodMode:
		return game.ToggleGodMode{}, nil
	case CmdActivateCurse:
		var cmd game.ActivateCurse
		return cmd, json.Unmarshal(data, &cmd)
	case CmdTakeCardToHand:
		var cmd game.TakeCardToHand
		return cmd, json.Unmarshal(data, &cmd)
	case CmdInteractWithMonster:
		var cmd game.InteractWithMonster
		return cmd, json.Unmarshal(data, &cmd)
	case CmdUseSpellOnTarget:
		var cmd game.UseSpellOnTarget
		return cmd, json.Unmarshal(data, &cmd)
	case CmdSellItem:
		var cmd game.SellItem
		return cmd, json.Unmarshal(data, &cmd)
	case CmdResetHand:
		return game.ResetHand{}, nil
	case CmdMerchantBuy:
		var cmd game.MerchantBuy
		return cmd, json.Unmarshal(data, &cmd)
	case CmdMerchantLeave:
		return game.MerchantLeave{}, nil
	case CmdAddCoins:
		var cmd game.AddCoins
		return cmd, json.Unmarshal(data, &cmd)
	case CmdScheduleMerchantNextRound:
		return game.ScheduleMerchantNextRound{}, nil
	case CmdClearScout:
		return game.ClearScout{}, nil
	}
	return nil, fmt.Errorf("unknown command type '%s'", kind)
}
