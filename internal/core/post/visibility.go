package post

import "time"

// Visibility describes which posts the requesting actor may see. A post is
// publicly visible when its publication time has passed, it is published and
// its category exists and is published. With IncludeOwn an authenticated
// actor additionally sees their own posts regardless of those conditions.
//
// Public feeds use IncludeOwn=false so an author's unpublished or
// future-dated posts never leak into the home or category listings.
type Visibility struct {
	ActorID    string // empty when the actor is anonymous
	IncludeOwn bool
	Now        time.Time
}

// Condition returns the SQL fragment and its arguments. The query must carry
// a LEFT JOIN on categories: a post without a category never satisfies the
// public clause (NULL fails the published check) but stays reachable through
// the own-override.
func (v Visibility) Condition() (string, []interface{}) {
	cond := "(posts.pub_date <= ? AND posts.is_published = ? AND categories.is_published = ?)"
	args := []interface{}{v.Now, true, true}
	if v.IncludeOwn && v.ActorID != "" {
		cond = "(" + cond + " OR posts.author_id = ?)"
		args = append(args, v.ActorID)
	}
	return cond, args
}

// Matches is the in-memory equivalent of Condition. It expects p.Category to
// be loaded when the post has one.
func (v Visibility) Matches(p *Post) bool {
	public := !p.PubDate.After(v.Now) &&
		p.IsPublished &&
		p.Category != nil &&
		p.Category.IsPublished
	if public {
		return true
	}
	return v.IncludeOwn && v.ActorID != "" && p.AuthorID.String() == v.ActorID
}
