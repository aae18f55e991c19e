package protocol

// Decode maps a tokenized event to its typed message. Unrecognized commands
// decode to nil.
func Decode(ev Event) Message {
	a, kw := ev.Arg, ev.KW
	switch ev.Command {
	case "player":
		return Player{Side: a(0), Name: a(1)}
	case "gen":
		return Gen{Num: a(0)}
	case "turn":
		return Turn{Num: a(0)}
	case "start":
		return Start{}
	case "win", "tie":
		return Win{Name: a(0), Tie: ev.Command == "tie"}
	case "message":
		return Text{Body: a(0)}
	case "switch", "drag":
		return Switch{Pokemon: a(0), Details: a(1), Drag: ev.Command == "drag"}
	case "detailschange", "-transform", "-formechange":
		return FormeChange{Kind: ev.Command, Pokemon: a(0), Arg2: a(1), Arg3: a(2), HasMsg: kw.Has("msg"), Cause: causeOf(ev)}
	case "switchout":
		return SwitchOut{Pokemon: a(0), Cause: causeOf(ev)}
	case "faint":
		return Faint{Pokemon: a(0)}
	case "swap":
		return Swap{Pokemon: a(0), Target: a(1)}
	case "move":
		return Move{Pokemon: a(0), Move: a(1), Target: a(2), ZEffect: kw.Has("zeffect"), Cause: causeOf(ev)}
	case "cant":
		return Cant{Pokemon: a(0), Effect: a(1), Move: a(2), Of: kw.Get("of")}
	case "-start":
		return VolatileStart{
			Pokemon: a(0), Effect: a(1), Arg3: a(2),
			Already: kw.Has("already"), Fatigue: kw.Has("fatigue"),
			ZEffect: kw.Has("zeffect"), Damage: kw.Has("damage"),
			Block: kw.Has("block"), Upkeep: kw.Has("upkeep"),
			Cause: causeOf(ev),
		}
	case "-end":
		return VolatileEnd{Pokemon: a(0), Effect: a(1), Cause: causeOf(ev)}
	case "-singleturn", "-singlemove":
		return SingleEffect{Kind: ev.Command, Pokemon: a(0), Effect: a(1), Cause: causeOf(ev)}
	case "-ability":
		return Ability{Pokemon: a(0), Ability: a(1), OldAbility: a(2), Arg4: a(3), Fail: kw.Has("fail"), Cause: causeOf(ev)}
	case "-endability":
		return EndAbility{Pokemon: a(0), Ability: a(1), Cause: causeOf(ev)}
	case "-item":
		return Item{Pokemon: a(0), Item: a(1), Cause: causeOf(ev)}
	case "-enditem":
		return EndItem{Pokemon: a(0), Item: a(1), Move: kw.Get("move"), Eat: kw.Has("eat"), Weaken: kw.Has("weaken"), Cause: causeOf(ev)}
	case "-status":
		return Status{Pokemon: a(0), Status: a(1), Cause: causeOf(ev)}
	case "-curestatus":
		return CureStatus{Pokemon: a(0), Status: a(1), Thaw: kw.Has("thaw"), Cause: causeOf(ev)}
	case "-cureteam":
		return CureTeam{Cause: causeOf(ev)}
	case "-sidestart", "-sideend":
		return SideCondition{Side: a(0), Effect: a(1), End: ev.Command == "-sideend"}
	case "-weather":
		return Weather{Weather: a(0), Upkeep: kw.Has("upkeep"), Cause: causeOf(ev)}
	case "-fieldstart", "-fieldactivate", "-fieldend":
		return FieldCondition{Kind: ev.Command, Effect: a(0), Cause: causeOf(ev)}
	case "-sethp":
		return SetHP{Cause: causeOf(ev)}
	case "-message", "-hint":
		return Notice{Text: a(0), Hint: ev.Command == "-hint"}
	case "-activate":
		return Activate{
			Pokemon: a(0), Effect: a(1), Target: a(2),
			Ability: kw.Get("ability"), Ability2: kw.Get("ability2"),
			Move: kw.Get("move"), Number: kw.Get("number"), Item: kw.Get("item"),
			Of: kw.Get("of"),
		}
	case "-prepare":
		return Prepare{Pokemon: a(0), Effect: a(1), Target: a(2)}
	case "-damage":
		return Damage{Pokemon: a(0), Percentage: a(2), PartiallyTrapped: kw.Has("partiallytrapped"), Cause: causeOf(ev)}
	case "-heal":
		return Heal{Pokemon: a(0), Wisher: kw.Get("wisher"), Cause: causeOf(ev)}
	case "-boost", "-unboost":
		return Boost{
			Kind: ev.Command, Pokemon: a(0), Stat: a(1), Amount: a(2),
			ZEffect: kw.Has("zeffect"), Multiple: kw.Has("multiple"),
			Cause: causeOf(ev),
		}
	case "-setboost":
		return SetBoost{Pokemon: a(0), Cause: causeOf(ev)}
	case "-swapboost", "-copyboost":
		return BoostTransfer{Kind: ev.Command, Pokemon: a(0), Target: a(1), Cause: causeOf(ev)}
	case "-clearboost", "-clearpositiveboost", "-clearnegativeboost":
		return ClearBoost{Kind: ev.Command, Pokemon: a(0), Source: a(1), ZEffect: kw.Has("zeffect"), Cause: causeOf(ev)}
	case "-invertboost":
		return InvertBoost{Pokemon: a(0), Cause: causeOf(ev)}
	case "-clearallboost":
		return ClearAllBoost{Cause: causeOf(ev)}
	case "-crit", "-supereffective", "-resisted":
		return Effectiveness{Kind: ev.Command, Pokemon: a(0), Spread: kw.Has("spread")}
	case "-block":
		return Block{Pokemon: a(0), Effect: a(1), Move: a(2), Of: kw.Get("of")}
	case "-fail":
		return Fail{
			Pokemon: a(0), Effect: a(1), Stat: a(2),
			HasMsg: kw.Has("msg"), Heavy: kw.Has("heavy"), Weak: kw.Has("weak"), Forme: kw.Has("forme"),
			Cause: causeOf(ev),
		}
	case "-immune":
		return Immune{Pokemon: a(0), OHKO: kw.Has("ohko"), Cause: causeOf(ev)}
	case "-miss":
		return Miss{Source: a(0), Pokemon: a(1), Cause: causeOf(ev)}
	case "-center", "-ohko", "-combine", "-notarget":
		return Announcement{Kind: ev.Command}
	case "-mega", "-primal":
		return Mega{Kind: ev.Command, Pokemon: a(0), Species: a(1), Item: a(2)}
	case "-zpower":
		return ZPower{Pokemon: a(0)}
	case "-burst":
		return Burst{Pokemon: a(0)}
	case "-zbroken":
		return ZBroken{Pokemon: a(0)}
	case "-hitcount":
		return HitCount{Num: a(1)}
	case "-waiting":
		return Waiting{Pokemon: a(0), Target: a(1)}
	case "-anim":
		return Anim{}
	}
	return nil
}
