package conquest

import (
	"reflect"
	"testing"
)

func duel(atk, def Design) (Force, Force, map[string]Design) {
	designs := map[string]Design{atk.ID: atk, def.ID: def}
	attacker := Force{OwnerID: "p1", Units: []Unit{{ID: "a1", DesignID: atk.ID, OwnerID: "p1"}}}
	defender := Force{OwnerID: "p2", Units: []Unit{{ID: "d1", DesignID: def.ID, OwnerID: "p2"}}}
	return attacker, defender, designs
}

func TestResolveCombatPenetrationAtEqualArmor(t *testing.T) {
	atk := Design{ID: "gun", GunCount: 1, GunLength: 3, EngineCount: 1}
	def := Design{ID: "wall", Armor: 3}
	a, d, designs := duel(atk, def)

	res := ResolveCombat(a, d, designs, "A", 2, seeded(1))
	if !res.AttackerWon() {
		t.Fatalf("expected attacker to win, winner = %q", res.Log.WinnerID)
	}
	if len(res.Log.Rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(res.Log.Rounds))
	}
	r := res.Log.Rounds[0]
	if r.AttackerShot == nil || !r.AttackerShot.Destroyed || r.AttackerShot.Damage != 1 {
		t.Errorf("expected destroying attacker shot, got %+v", r.AttackerShot)
	}
	if r.DefenderShot != nil {
		t.Errorf("destroyed defender should not shoot back, got %+v", r.DefenderShot)
	}
	if len(res.SurvivingDefenders) != 0 || len(res.SurvivingAttackers) != 1 {
		t.Errorf("survivors: attackers=%v defenders=%v", res.SurvivingAttackers, res.SurvivingDefenders)
	}
}

func TestResolveCombatShortGunNeverDestroys(t *testing.T) {
	atk := Design{ID: "gun", GunCount: 4, GunLength: 2, EngineCount: 1}
	def := Design{ID: "wall", Armor: 3}

	for seed := int64(1); seed <= 20; seed++ {
		a, d, designs := duel(atk, def)
		res := ResolveCombat(a, d, designs, "A", 2, seeded(seed))
		for i, r := range res.Log.Rounds {
			if r.AttackerShot != nil && r.AttackerShot.Destroyed {
				t.Fatalf("seed %d round %d: short gun destroyed armored target", seed, i)
			}
		}
		if res.Log.WinnerID != "p2" {
			t.Errorf("seed %d: stalemate should go to defender, got %q", seed, res.Log.WinnerID)
		}
		if len(res.Log.Rounds) != 1 {
			t.Errorf("seed %d: stalemate should stop after 1 round, got %d", seed, len(res.Log.Rounds))
		}
	}
}

func TestResolveCombatUnarmedStalemate(t *testing.T) {
	atk := Design{ID: "hauler", EngineCount: 1, CargoCapacity: 10}
	def := Design{ID: "hut"}
	a, d, designs := duel(atk, def)

	res := ResolveCombat(a, d, designs, "A", 2, seeded(7))
	if res.Log.WinnerID != "p2" {
		t.Errorf("expected defender to win stalemate, got %q", res.Log.WinnerID)
	}
	if len(res.SurvivingAttackers) != 1 || len(res.SurvivingDefenders) != 1 {
		t.Errorf("expected everyone to survive, got attackers=%v defenders=%v",
			res.SurvivingAttackers, res.SurvivingDefenders)
	}
	if res.AttackerWon() {
		t.Error("AttackerWon should be false")
	}
}

func TestResolveCombatDefenderReturnsFire(t *testing.T) {
	atk := Design{ID: "pea", GunCount: 1, GunLength: 1, EngineCount: 1}
	def := Design{ID: "fort", Armor: 2, GunCount: 1, GunLength: 5}
	a, d, designs := duel(atk, def)

	res := ResolveCombat(a, d, designs, "A", 2, seeded(3))
	if res.Log.WinnerID != "p2" {
		t.Fatalf("expected defender to win, got %q", res.Log.WinnerID)
	}
	r := res.Log.Rounds[0]
	if r.DefenderShot == nil || !r.DefenderShot.Destroyed || r.DefenderShot.TargetID != "a1" {
		t.Errorf("expected defender to destroy a1, got %+v", r.DefenderShot)
	}
	if len(res.SurvivingAttackers) != 0 {
		t.Errorf("expected no surviving attackers, got %v", res.SurvivingAttackers)
	}
}

func TestResolveCombatMissingDesignIsInert(t *testing.T) {
	attacker := Force{OwnerID: "p1", Units: []Unit{{ID: "a1", DesignID: "gone"}}}
	defender := Force{OwnerID: "p2", Units: []Unit{{ID: "d1", DesignID: "gone"}}}

	res := ResolveCombat(attacker, defender, map[string]Design{}, "A", 2, seeded(1))
	if res.Log.WinnerID != "p2" || len(res.SurvivingAttackers) != 1 || len(res.SurvivingDefenders) != 1 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestResolveCombatEmptyForces(t *testing.T) {
	atk := Design{ID: "gun", GunCount: 1, GunLength: 3}
	designs := map[string]Design{"gun": atk}
	attacker := Force{OwnerID: "p1", Units: []Unit{{ID: "a1", DesignID: "gun"}}}

	res := ResolveCombat(attacker, Force{OwnerID: "p2"}, designs, "A", 2, seeded(1))
	if res.Log.WinnerID != "p1" || len(res.Log.Rounds) != 0 {
		t.Errorf("attacker against nobody: winner=%q rounds=%d", res.Log.WinnerID, len(res.Log.Rounds))
	}

	res = ResolveCombat(Force{OwnerID: "p1"}, Force{OwnerID: "p2"}, designs, "A", 2, seeded(1))
	if res.Log.WinnerID != "p2" {
		t.Errorf("empty sides should resolve to defender, got %q", res.Log.WinnerID)
	}
}

func TestResolveCombatTerminates(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		rng := seeded(seed)
		designs := make(map[string]Design)
		mk := func(owner string, n int) Force {
			f := Force{OwnerID: owner}
			for i := 0; i < n; i++ {
				d := Design{
					ID:        owner + string(rune('a'+i)),
					Armor:     rng.Intn(4),
					GunCount:  rng.Intn(3),
					GunLength: rng.Intn(4),
				}
				designs[d.ID] = d
				f.Units = append(f.Units, Unit{ID: d.ID, DesignID: d.ID, OwnerID: owner})
			}
			return f
		}
		attacker := mk("p1", 1+rng.Intn(6))
		defender := mk("p2", 1+rng.Intn(6))

		res := ResolveCombat(attacker, defender, designs, "A", 2, rng)
		if len(res.Log.Rounds) > MaxCombatRounds {
			t.Fatalf("seed %d: %d rounds exceeds cap", seed, len(res.Log.Rounds))
		}
		if len(res.SurvivingAttackers) > len(attacker.Units) || len(res.SurvivingDefenders) > len(defender.Units) {
			t.Fatalf("seed %d: more survivors than combatants", seed)
		}
		if len(res.SurvivingAttackers) > 0 && len(res.SurvivingDefenders) > 0 {
			atk := combatants(unitsByID(attacker.Units, res.SurvivingAttackers), designs)
			def := combatants(unitsByID(defender.Units, res.SurvivingDefenders), designs)
			if canHurt(atk, def) || canHurt(def, atk) {
				t.Errorf("seed %d: fight ended with both sides able to hurt", seed)
			}
			if res.Log.WinnerID != "p2" {
				t.Errorf("seed %d: undecided fight should go to defender", seed)
			}
		}
		for i, r := range res.Log.Rounds {
			if r.AttackerShot == nil {
				t.Errorf("seed %d round %d: missing attacker shot", seed, i)
			}
		}
	}
}

func TestResolveCombatDeterministic(t *testing.T) {
	atk := Design{ID: "gun", GunCount: 1, GunLength: 2, Armor: 1}
	def := Design{ID: "wall", GunCount: 1, GunLength: 1, Armor: 2}
	designs := map[string]Design{"gun": atk, "wall": def}
	attacker := Force{OwnerID: "p1"}
	defender := Force{OwnerID: "p2"}
	for i := 0; i < 5; i++ {
		attacker.Units = append(attacker.Units, Unit{ID: "a" + string(rune('0'+i)), DesignID: "gun"})
		defender.Units = append(defender.Units, Unit{ID: "d" + string(rune('0'+i)), DesignID: "wall"})
	}

	first := ResolveCombat(attacker, defender, designs, "A", 4, seeded(42))
	second := ResolveCombat(attacker, defender, designs, "A", 4, seeded(42))
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different combat results")
	}
}

func unitsByID(units []Unit, ids []string) []Unit {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Unit
	for _, u := range units {
		if want[u.ID] {
			out = append(out, u)
		}
	}
	return out
}
