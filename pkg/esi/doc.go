/*
Package esi assembles the ESI Design School conversation flow: the fixed
six-node qualification graph and the five n8n webhook tools behind it, ready
to deploy as a Retell agent.

Build is a pure factory. Same parameters, same document — no I/O, no clock,
no randomness. The node and tool identifiers are the literal values the live
flow was authored with, so repeated deployments address the same entities.

The Spanish prompt and business-rules text in this package is domain content
owned by the ESI commercial team. It is carried verbatim and never
interpreted here.
*/
package esi
