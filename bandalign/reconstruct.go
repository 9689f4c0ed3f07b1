package bandalign

// reconstruct turns a finished crosspoint table into the edit operations
// from (0,0) to (ulen, vlen).
//
// The table is read once from column vlen down to column 0. For consecutive
// columns i−1 and i with row delta δ = tab[i].row − tab[i−1].row:
//
//	δ = 0            insert
//	δ = 1, replace   replace
//	δ = 1, delete    insert, delete   (the crossing sits inside an indel run)
//	δ = 1, insert    delete, insert
//	δ > 1, replace   δ−1 deletes, replace
//	δ > 1, insert    δ deletes, insert
//	δ > 1, delete    replace, δ−1 deletes
//
// solve stores only replace and insert entries; the delete rows read tables
// that record main-diagonal crossings instead of column entry cells.
//
// Rows below tab[vlen].row are trailing deletes and rows above tab[0].row
// leading deletes. Operations are collected backwards and reversed at the end.
func reconstruct(tab []crosspoint, ulen int) []Op {
	vlen := len(tab) - 1
	ops := make([]Op, 0, ulen+vlen)

	push := func(op Op, times int) {
		for ; times > 0; times-- {
			ops = append(ops, op)
		}
	}

	if tab[vlen].row == noPoint || tab[vlen].row > ulen {
		internalf("last column has row %d of %d", tab[vlen].row, ulen)
	}
	push(OpDelete, ulen-tab[vlen].row)
	for i := vlen; i > 0; i-- {
		cur, prev := tab[i], tab[i-1]
		if cur.row == noPoint || prev.row == noPoint {
			internalf("column %d has no row", i)
		}
		delta := cur.row - prev.row
		switch {
		case delta == 0:
			push(OpInsert, 1)
		case delta == 1:
			switch cur.edge {
			case edgeReplace:
				push(OpReplace, 1)
			case edgeDelete: // crossing-style table only
				push(OpDelete, 1)
				push(OpInsert, 1)
			case edgeInsert:
				push(OpInsert, 1)
				push(OpDelete, 1)
			default:
				internalf("column %d has edge %d", i, cur.edge)
			}
		case delta > 1:
			switch cur.edge {
			case edgeReplace:
				push(OpReplace, 1)
				push(OpDelete, delta-1)
			case edgeInsert:
				push(OpInsert, 1)
				push(OpDelete, delta)
			case edgeDelete: // crossing-style table only
				push(OpDelete, delta-1)
				push(OpReplace, 1)
			default:
				internalf("column %d has edge %d", i, cur.edge)
			}
		default:
			internalf("row decreases from %d to %d at column %d", prev.row, cur.row, i)
		}
	}
	push(OpDelete, tab[0].row)

	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops
}
