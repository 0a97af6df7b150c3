package ui

import (
	"testing"

	"github.com/automoto/neon-dodge/components"
	"github.com/automoto/neon-dodge/snapshot"
)

func TestRowText(t *testing.T) {
	got := rowText(snapshot.ShopRow{Key: 3, Name: "Damage +1", Cost: 45})
	if got != "[3] Damage +1 - 45" {
		t.Errorf("Expected %q, got %q", "[3] Damage +1 - 45", got)
	}
}

func TestWalletText(t *testing.T) {
	if got := walletText(12); got != "Coins: 12" {
		t.Errorf("Expected %q, got %q", "Coins: 12", got)
	}
}

func TestDrainClearsQueue(t *testing.T) {
	sui := &ShopUI{}
	sui.pending = append(sui.pending, components.Command{Kind: components.CmdBuy, Index: 2})

	cmds := sui.Drain()
	if len(cmds) != 1 || cmds[0].Index != 2 {
		t.Errorf("Expected one buy for index 2, got %v", cmds)
	}
	if len(sui.Drain()) != 0 {
		t.Error("Expected empty queue after drain")
	}
}
