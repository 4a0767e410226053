package engine

type knightRule struct{}

func (knightRule) IsMoveType(ctx *MoveContext) bool {
	df, dr := ctx.delta()
	fileDiff, rankDiff := abs(df), abs(dr)
	return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)
}

func (knightRule) Apply(ctx *MoveContext) MoveResult {
	return MoveResult{Captured: relocate(ctx.Board, ctx.From, ctx.To)}
}

// Sliders check the path themselves; a blocked line is not a shape match.

type bishopRule struct{}

func (bishopRule) IsMoveType(ctx *MoveContext) bool {
	return ctx.From != ctx.To && isDiagonalClear(ctx.Board, ctx.From, ctx.To)
}

func (bishopRule) Apply(ctx *MoveContext) MoveResult {
	return MoveResult{Captured: relocate(ctx.Board, ctx.From, ctx.To)}
}

type rookRule struct{}

func (rookRule) IsMoveType(ctx *MoveContext) bool {
	return ctx.From != ctx.To && isStraightClear(ctx.Board, ctx.From, ctx.To)
}

func (rookRule) Apply(ctx *MoveContext) MoveResult {
	return MoveResult{Captured: relocate(ctx.Board, ctx.From, ctx.To)}
}

// queenRule is the union of the bishop and rook shapes.
type queenRule struct{}

func (queenRule) IsMoveType(ctx *MoveContext) bool {
	return bishopRule{}.IsMoveType(ctx) || rookRule{}.IsMoveType(ctx)
}

func (queenRule) Apply(ctx *MoveContext) MoveResult {
	return MoveResult{Captured: relocate(ctx.Board, ctx.From, ctx.To)}
}
