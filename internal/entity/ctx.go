package entity

type CtxKeyIP struct{}
